package artifact

import (
	"net"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"kunstkamera-backend/internal/shared/patch"
)

// CreateArtifactRequest - POST /api/v1/artifacts
type CreateArtifactRequest struct {
	MuseumID     uuid.UUID              `json:"museum_id" binding:"required"`
	Title        string                 `json:"title" binding:"required"`
	Description  *string                `json:"description"`
	ArtifactType string                 `json:"artifact_type" binding:"required"`
	ContentURL   *string                `json:"content_url"`
	FileMetadata map[string]interface{} `json:"file_metadata"`
	OrderIndex   *int                   `json:"order_index"` // defaults to max(sibling)+1
}

func (r CreateArtifactRequest) Validate(strictLinkHosts bool) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.MuseumID,
			validation.Required.Error("museum_id is required"),
			validation.By(validateUUIDNotNil),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 200).Error("title must be 1-200 characters"),
		),
		validation.Field(&r.Description,
			validation.Length(0, 2000).Error("description must be at most 2000 characters"),
		),
		validation.Field(&r.ArtifactType,
			validation.Required.Error("artifact_type is required"),
			validation.By(validateArtifactType),
		),
	)
	if err != nil {
		return err
	}

	if ArtifactTypeEnum(r.ArtifactType) == ArtifactTypeLink {
		errs := validation.Errors{}
		if r.ContentURL == nil || *r.ContentURL == "" {
			errs["content_url"] = validation.NewError("validation_required", "content_url is required for link artifacts")
		} else if err := ValidateLinkURL(*r.ContentURL, strictLinkHosts); err != nil {
			errs["content_url"] = err
		}
		return errs.Filter()
	}

	return nil
}

// UpdateArtifactRequest - PATCH /api/v1/artifacts/:id
// museum_id is deliberately not part of the payload: an artifact cannot be
// moved between museums, a museum_id key in the body is silently dropped.
type UpdateArtifactRequest struct {
	Title        patch.Field[string]                 `json:"title"`
	Description  patch.Field[string]                 `json:"description"`
	ArtifactType patch.Field[string]                 `json:"artifact_type"`
	ContentURL   patch.Field[string]                 `json:"content_url"`
	FileMetadata patch.Field[map[string]interface{}] `json:"file_metadata"`
	OrderIndex   patch.Field[int]                    `json:"order_index"`
}

func (r UpdateArtifactRequest) Validate(strictLinkHosts bool) error {
	errs := validation.Errors{}

	if r.Title.Set {
		if !r.Title.Valid {
			errs["title"] = validation.NewError("validation_required", "title cannot be null")
		} else if err := validation.Validate(r.Title.Value, validation.Required, validation.Length(1, 200)); err != nil {
			errs["title"] = err
		}
	}
	if r.Description.Set && r.Description.Valid {
		if err := validation.Validate(r.Description.Value, validation.Length(0, 2000)); err != nil {
			errs["description"] = err
		}
	}
	if r.ArtifactType.Set {
		if !r.ArtifactType.Valid {
			errs["artifact_type"] = validation.NewError("validation_required", "artifact_type cannot be null")
		} else if err := validateArtifactType(r.ArtifactType.Value); err != nil {
			errs["artifact_type"] = err
		}
	}
	if r.ContentURL.Set && r.ContentURL.Valid && r.ContentURL.Value != "" {
		if isLink(r.ArtifactType) {
			if err := ValidateLinkURL(r.ContentURL.Value, strictLinkHosts); err != nil {
				errs["content_url"] = err
			}
		}
	}
	if isLink(r.ArtifactType) && r.ContentURL.Set && (!r.ContentURL.Valid || r.ContentURL.Value == "") {
		errs["content_url"] = validation.NewError("validation_required", "content_url is required for link artifacts")
	}

	return errs.Filter()
}

func (r UpdateArtifactRequest) HasChanges() bool {
	return r.Title.Set || r.Description.Set || r.ArtifactType.Set ||
		r.ContentURL.Set || r.FileMetadata.Set || r.OrderIndex.Set
}

func isLink(f patch.Field[string]) bool {
	return f.Set && f.Valid && ArtifactTypeEnum(f.Value) == ArtifactTypeLink
}

func validateArtifactType(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required handles emptiness
	}
	if !ArtifactTypeEnum(s).IsValid() {
		return validation.NewError(
			"validation_artifact_type",
			"artifact_type must be one of: image, text, link, video",
		)
	}
	return nil
}

// ValidateLinkURL checks a link target: absolute URL, http or https scheme.
// With strictHosts on, loopback and private-range hosts are rejected so the
// stored link cannot be used to probe internal services.
func ValidateLinkURL(raw string, strictHosts bool) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return validation.NewError("validation_url", "content_url must be an absolute URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return validation.NewError("validation_url_scheme", "content_url scheme must be http or https")
	}

	if strictHosts {
		host := strings.ToLower(u.Hostname())
		if host == "localhost" || strings.HasSuffix(host, ".localhost") || strings.HasSuffix(host, ".local") {
			return validation.NewError("validation_url_host", "content_url host is not allowed")
		}
		if ip := net.ParseIP(host); ip != nil {
			if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
				return validation.NewError("validation_url_host", "content_url host is not allowed")
			}
		}
	}

	return nil
}

func validateUUIDNotNil(value interface{}) error {
	id, _ := value.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "museum_id is required")
	}
	return nil
}
