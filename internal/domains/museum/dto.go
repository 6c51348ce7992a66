package museum

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"kunstkamera-backend/internal/shared/patch"
	"kunstkamera-backend/internal/shared/utils"
)

// CreateMuseumRequest - POST /api/v1/museums
type CreateMuseumRequest struct {
	Title         string  `json:"title" binding:"required"`
	Slug          string  `json:"slug" binding:"required"`
	Description   *string `json:"description"`
	CoverImageURL *string `json:"cover_image_url"`
	IsPublic      *bool   `json:"is_public"`  // defaults to true
	LayoutType    string  `json:"layout_type"` // defaults to grid
}

func (r CreateMuseumRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 100).Error("title must be 1-100 characters"),
		),
		validation.Field(&r.Slug,
			validation.Required.Error("slug is required"),
			validation.Length(1, 100).Error("slug must be 1-100 characters"),
			validation.By(validateSlugFormat),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500).Error("description must be at most 500 characters"),
		),
		validation.Field(&r.CoverImageURL,
			validation.Length(0, 2048),
		),
		validation.Field(&r.LayoutType,
			validation.By(validateLayoutType),
		),
	)
}

// UpdateMuseumRequest - PATCH /api/v1/museums/:id
// Absent fields stay unchanged; explicit nulls clear nullable columns.
// user_id is not part of the payload: the owner reference is immutable.
type UpdateMuseumRequest struct {
	Title         patch.Field[string] `json:"title"`
	Slug          patch.Field[string] `json:"slug"`
	Description   patch.Field[string] `json:"description"`
	CoverImageURL patch.Field[string] `json:"cover_image_url"`
	IsPublic      patch.Field[bool]   `json:"is_public"`
	LayoutType    patch.Field[string] `json:"layout_type"`
}

func (r UpdateMuseumRequest) Validate() error {
	errs := validation.Errors{}

	if r.Title.Set {
		if !r.Title.Valid {
			errs["title"] = validation.NewError("validation_required", "title cannot be null")
		} else if err := validation.Validate(r.Title.Value, validation.Required, validation.Length(1, 100)); err != nil {
			errs["title"] = err
		}
	}
	if r.Slug.Set {
		if !r.Slug.Valid {
			errs["slug"] = validation.NewError("validation_required", "slug cannot be null")
		} else if err := validation.Validate(r.Slug.Value, validation.Required, validation.Length(1, 100), validation.By(validateSlugFormat)); err != nil {
			errs["slug"] = err
		}
	}
	if r.Description.Set && r.Description.Valid {
		if err := validation.Validate(r.Description.Value, validation.Length(0, 500)); err != nil {
			errs["description"] = err
		}
	}
	if r.IsPublic.Set && !r.IsPublic.Valid {
		errs["is_public"] = validation.NewError("validation_required", "is_public cannot be null")
	}
	if r.LayoutType.Set {
		if !r.LayoutType.Valid {
			errs["layout_type"] = validation.NewError("validation_required", "layout_type cannot be null")
		} else if err := validateLayoutType(r.LayoutType.Value); err != nil {
			errs["layout_type"] = err
		}
	}

	return errs.Filter()
}

// HasChanges reports whether any field is present in the payload.
func (r UpdateMuseumRequest) HasChanges() bool {
	return r.Title.Set || r.Slug.Set || r.Description.Set ||
		r.CoverImageURL.Set || r.IsPublic.Set || r.LayoutType.Set
}

func validateSlugFormat(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required handles emptiness
	}
	if !utils.IsValidSlug(s) {
		return validation.NewError(
			"validation_slug",
			"slug must contain only lowercase letters, digits and hyphens",
		)
	}
	return nil
}

func validateLayoutType(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // empty means "use default"
	}
	if !LayoutTypeEnum(s).IsValid() {
		return validation.NewError(
			"validation_layout_type",
			"layout_type must be one of: grid, masonry, list",
		)
	}
	return nil
}
