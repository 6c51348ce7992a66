package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	a "kunstkamera-backend/internal/domains/artifact"
	m "kunstkamera-backend/internal/domains/museum"
	"kunstkamera-backend/internal/shared/patch"
)

type fakeArtifactRepo struct {
	artifacts map[uuid.UUID]*a.Artifact
}

func newFakeArtifactRepo() *fakeArtifactRepo {
	return &fakeArtifactRepo{artifacts: map[uuid.UUID]*a.Artifact{}}
}

func (f *fakeArtifactRepo) Create(_ context.Context, art *a.Artifact) (*a.Artifact, error) {
	cp := *art
	f.artifacts[cp.ID] = &cp
	return &cp, nil
}

func (f *fakeArtifactRepo) GetByID(_ context.Context, id uuid.UUID) (*a.Artifact, error) {
	art, ok := f.artifacts[id]
	if !ok {
		return nil, nil
	}
	cp := *art
	return &cp, nil
}

func (f *fakeArtifactRepo) ListByMuseum(_ context.Context, museumID uuid.UUID) ([]*a.Artifact, error) {
	var out []*a.Artifact
	for _, art := range f.artifacts {
		if art.MuseumID == museumID {
			out = append(out, art)
		}
	}
	return out, nil
}

func (f *fakeArtifactRepo) Update(_ context.Context, id uuid.UUID, req a.UpdateArtifactRequest) (*a.Artifact, error) {
	art, ok := f.artifacts[id]
	if !ok {
		return nil, nil
	}
	if req.Title.Set {
		art.Title = req.Title.Value
	}
	if req.Description.Set {
		art.Description = req.Description.Ptr()
	}
	if req.ArtifactType.Set {
		art.ArtifactType = a.ArtifactTypeEnum(req.ArtifactType.Value)
	}
	if req.ContentURL.Set {
		art.ContentURL = req.ContentURL.Ptr()
	}
	if req.OrderIndex.Set {
		art.OrderIndex = req.OrderIndex.Value
	}
	cp := *art
	return &cp, nil
}

func (f *fakeArtifactRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.artifacts[id]; !ok {
		return a.ErrArtifactNotFound
	}
	delete(f.artifacts, id)
	return nil
}

func (f *fakeArtifactRepo) MaxOrderIndex(_ context.Context, museumID uuid.UUID) (int, error) {
	max := 0
	for _, art := range f.artifacts {
		if art.MuseumID == museumID && art.OrderIndex > max {
			max = art.OrderIndex
		}
	}
	return max, nil
}

type fakeMuseumLookup struct {
	museums map[uuid.UUID]*m.Museum
}

func (f *fakeMuseumLookup) GetByID(_ context.Context, id uuid.UUID) (*m.Museum, error) {
	mus, ok := f.museums[id]
	if !ok {
		return nil, nil
	}
	return mus, nil
}

func (f *fakeMuseumLookup) Create(context.Context, *m.Museum) (*m.Museum, error) { panic("unused") }
func (f *fakeMuseumLookup) GetWithMetaByID(context.Context, uuid.UUID) (*m.MuseumWithMeta, error) {
	panic("unused")
}
func (f *fakeMuseumLookup) ListByOwner(context.Context, uuid.UUID, bool) ([]*m.MuseumWithMeta, error) {
	panic("unused")
}
func (f *fakeMuseumLookup) Update(context.Context, uuid.UUID, m.UpdateMuseumRequest) (*m.MuseumWithMeta, error) {
	panic("unused")
}
func (f *fakeMuseumLookup) Delete(context.Context, uuid.UUID) error { panic("unused") }
func (f *fakeMuseumLookup) ExistsBySlug(context.Context, string, uuid.UUID) (bool, error) {
	panic("unused")
}
func (f *fakeMuseumLookup) AddLike(context.Context, uuid.UUID, uuid.UUID) error    { panic("unused") }
func (f *fakeMuseumLookup) RemoveLike(context.Context, uuid.UUID, uuid.UUID) error { panic("unused") }

type fakeEnqueuer struct {
	objects []string
}

func (f *fakeEnqueuer) EnqueueDeletePrefix(context.Context, string) error { return nil }
func (f *fakeEnqueuer) EnqueueDeleteObject(_ context.Context, key string) error {
	f.objects = append(f.objects, key)
	return nil
}

const storagePrefix = "http://storage.local/kunstkamera/"

type fixture struct {
	repo    *fakeArtifactRepo
	museums *fakeMuseumLookup
	queue   *fakeEnqueuer
	svc     a.Service

	owner    uuid.UUID
	museumID uuid.UUID
}

func newFixture(strictHosts bool) *fixture {
	f := &fixture{
		repo:    newFakeArtifactRepo(),
		museums: &fakeMuseumLookup{museums: map[uuid.UUID]*m.Museum{}},
		queue:   &fakeEnqueuer{},
		owner:   uuid.New(),
	}
	f.museumID = f.addMuseum(f.owner, true)
	f.svc = NewArtifactService(f.repo, f.museums, f.queue, storagePrefix, strictHosts)
	return f
}

func (f *fixture) addMuseum(ownerID uuid.UUID, isPublic bool) uuid.UUID {
	mus := &m.Museum{ID: uuid.New(), UserID: ownerID, IsPublic: isPublic}
	f.museums.museums[mus.ID] = mus
	return mus.ID
}

func (f *fixture) addArtifact(museumID uuid.UUID, orderIndex int) *a.Artifact {
	art := &a.Artifact{
		ID:           uuid.New(),
		MuseumID:     museumID,
		Title:        "Exhibit",
		ArtifactType: a.ArtifactTypeImage,
		OrderIndex:   orderIndex,
	}
	f.repo.artifacts[art.ID] = art
	return art
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestCreate_FirstArtifactGetsIndexOne(t *testing.T) {
	f := newFixture(false)

	got, err := f.svc.Create(context.Background(), f.owner, &a.CreateArtifactRequest{
		MuseumID:     f.museumID,
		Title:        "First",
		ArtifactType: "image",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, got.OrderIndex)
}

func TestCreate_DefaultsAfterSiblings(t *testing.T) {
	f := newFixture(false)
	f.addArtifact(f.museumID, 3)
	f.addArtifact(f.museumID, 7)

	got, err := f.svc.Create(context.Background(), f.owner, &a.CreateArtifactRequest{
		MuseumID:     f.museumID,
		Title:        "Last",
		ArtifactType: "text",
	})

	require.NoError(t, err)
	assert.Equal(t, 8, got.OrderIndex)
}

func TestCreate_ExplicitOrderIndexKept(t *testing.T) {
	f := newFixture(false)
	f.addArtifact(f.museumID, 5)

	got, err := f.svc.Create(context.Background(), f.owner, &a.CreateArtifactRequest{
		MuseumID:     f.museumID,
		Title:        "Pinned",
		ArtifactType: "image",
		OrderIndex:   intPtr(2),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, got.OrderIndex)
}

func TestCreate_LinkRequiresContentURL(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.Create(context.Background(), f.owner, &a.CreateArtifactRequest{
		MuseumID:     f.museumID,
		Title:        "Dangling",
		ArtifactType: "link",
	})

	require.Error(t, err)
	assert.Empty(t, f.repo.artifacts)
}

func TestCreate_LinkRejectsFTPScheme(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.Create(context.Background(), f.owner, &a.CreateArtifactRequest{
		MuseumID:     f.museumID,
		Title:        "Old school",
		ArtifactType: "link",
		ContentURL:   strPtr("ftp://files.example.com/x"),
	})

	require.Error(t, err)
}

func TestCreate_StrictHostsRejectLoopback(t *testing.T) {
	strict := newFixture(true)
	lax := newFixture(false)

	for _, target := range []string{
		"http://localhost:8080/admin",
		"http://127.0.0.1/metrics",
		"http://10.0.0.5/internal",
		"http://169.254.169.254/latest/meta-data",
	} {
		_, err := strict.svc.Create(context.Background(), strict.owner, &a.CreateArtifactRequest{
			MuseumID:     strict.museumID,
			Title:        "Probe",
			ArtifactType: "link",
			ContentURL:   strPtr(target),
		})
		assert.Error(t, err, "strict mode should reject %s", target)
	}

	_, err := lax.svc.Create(context.Background(), lax.owner, &a.CreateArtifactRequest{
		MuseumID:     lax.museumID,
		Title:        "Dev link",
		ArtifactType: "link",
		ContentURL:   strPtr("http://localhost:3000/page"),
	})
	assert.NoError(t, err, "development mode allows local links")
}

func TestCreate_OwnershipViaParentMuseum(t *testing.T) {
	f := newFixture(false)

	stranger := uuid.New()
	_, err := f.svc.Create(context.Background(), stranger, &a.CreateArtifactRequest{
		MuseumID:     f.museumID,
		Title:        "Intruder",
		ArtifactType: "image",
	})
	assert.ErrorIs(t, err, a.ErrForbidden, "public museum of someone else")

	privateID := f.addMuseum(f.owner, false)
	_, err = f.svc.Create(context.Background(), stranger, &a.CreateArtifactRequest{
		MuseumID:     privateID,
		Title:        "Intruder",
		ArtifactType: "image",
	})
	assert.ErrorIs(t, err, a.ErrMuseumNotFound, "private museum looks absent")
}

func TestCreate_MissingMuseum(t *testing.T) {
	f := newFixture(false)

	_, err := f.svc.Create(context.Background(), f.owner, &a.CreateArtifactRequest{
		MuseumID:     uuid.New(),
		Title:        "Orphan",
		ArtifactType: "image",
	})
	assert.ErrorIs(t, err, a.ErrMuseumNotFound)
}

func TestUpdate_MuseumIDInPayloadIsDropped(t *testing.T) {
	f := newFixture(false)
	art := f.addArtifact(f.museumID, 1)
	otherMuseum := f.addMuseum(f.owner, true)

	// a client trying to move the artifact between museums
	body := []byte(`{"title":"Renamed","museum_id":"` + otherMuseum.String() + `"}`)
	var req a.UpdateArtifactRequest
	require.NoError(t, json.Unmarshal(body, &req))

	got, err := f.svc.Update(context.Background(), f.owner, art.ID, req)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.Equal(t, f.museumID, got.MuseumID, "museum reference untouched")
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	f := newFixture(false)
	art := f.addArtifact(f.museumID, 1)

	req := a.UpdateArtifactRequest{Title: patch.NewValue("Stolen")}
	_, err := f.svc.Update(context.Background(), uuid.New(), art.ID, req)

	assert.ErrorIs(t, err, a.ErrForbidden)
}

func TestUpdate_NonOwnerWithBadPayloadStillForbidden(t *testing.T) {
	f := newFixture(false)
	art := f.addArtifact(f.museumID, 1)

	// null title would fail validation, but a stranger must get the
	// ownership answer, not a readout of what is wrong with the payload
	req := a.UpdateArtifactRequest{Title: patch.NewNull[string]()}
	_, err := f.svc.Update(context.Background(), uuid.New(), art.ID, req)

	assert.ErrorIs(t, err, a.ErrForbidden)
}

func TestUpdate_MissingArtifactWithBadPayload(t *testing.T) {
	f := newFixture(false)

	req := a.UpdateArtifactRequest{Title: patch.NewNull[string]()}
	_, err := f.svc.Update(context.Background(), f.owner, uuid.New(), req)

	assert.ErrorIs(t, err, a.ErrArtifactNotFound)
}

func TestDelete_EnqueuesOwnedFileCleanup(t *testing.T) {
	f := newFixture(false)
	art := f.addArtifact(f.museumID, 1)
	art.ContentURL = strPtr(storagePrefix + "artifacts/abc/123-tok-photo.jpg")

	require.NoError(t, f.svc.Delete(context.Background(), f.owner, art.ID))

	assert.Empty(t, f.repo.artifacts)
	require.Len(t, f.queue.objects, 1)
	assert.Equal(t, "artifacts/abc/123-tok-photo.jpg", f.queue.objects[0])
}

func TestDelete_ExternalURLNotEnqueued(t *testing.T) {
	f := newFixture(false)
	art := f.addArtifact(f.museumID, 1)
	art.ContentURL = strPtr("https://example.com/image.jpg")

	require.NoError(t, f.svc.Delete(context.Background(), f.owner, art.ID))

	assert.Empty(t, f.queue.objects)
}

func TestGetByID_FollowsMuseumVisibility(t *testing.T) {
	f := newFixture(false)
	privateID := f.addMuseum(f.owner, false)
	art := f.addArtifact(privateID, 1)

	_, err := f.svc.GetByID(context.Background(), uuid.New(), art.ID)
	assert.ErrorIs(t, err, a.ErrArtifactNotFound)

	got, err := f.svc.GetByID(context.Background(), f.owner, art.ID)
	require.NoError(t, err)
	assert.Equal(t, art.ID, got.ID)
}
