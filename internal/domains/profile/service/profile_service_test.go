package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunstkamera-backend/internal/domains/profile"
	"kunstkamera-backend/internal/shared/patch"
)

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*profile.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[uuid.UUID]*profile.Profile{}}
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Create(_ context.Context, p *profile.Profile) (*profile.Profile, error) {
	if p.Username != nil {
		for _, other := range f.profiles {
			if other.Username != nil && *other.Username == *p.Username {
				return nil, profile.ErrUsernameTaken
			}
		}
	}
	cp := *p
	f.profiles[cp.UserID] = &cp
	return &cp, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, userID uuid.UUID, req profile.UpdateProfileRequest) (*profile.Profile, error) {
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	if req.Username.Set {
		if req.Username.Valid {
			for otherID, other := range f.profiles {
				if otherID != userID && other.Username != nil && *other.Username == req.Username.Value {
					return nil, profile.ErrUsernameTaken
				}
			}
		}
		p.Username = req.Username.Ptr()
	}
	if req.FullName.Set {
		p.FullName = req.FullName.Ptr()
	}
	if req.AvatarURL.Set {
		p.AvatarURL = req.AvatarURL.Ptr()
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) ExistsByUsername(_ context.Context, username string, excludeUserID uuid.UUID) (bool, error) {
	for id, p := range f.profiles {
		if id != excludeUserID && p.Username != nil && *p.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

func TestGetOrCreate_LazyCreateWithDerivedUsername(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	userID := uuid.New()
	got, err := svc.GetOrCreate(context.Background(), userID, "jane.doe@example.com", "Jane Doe")

	require.NoError(t, err)
	require.NotNil(t, got.Username)
	assert.Equal(t, "jane_doe", *got.Username)
	require.NotNil(t, got.FullName)
	assert.Equal(t, "Jane Doe", *got.FullName)

	// second fetch returns the same row, no second create
	again, err := svc.GetOrCreate(context.Background(), userID, "jane.doe@example.com", "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, got.UserID, again.UserID)
	assert.Len(t, repo.profiles, 1)
}

func TestGetOrCreate_CollidingUsernameFallsBackToUnset(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	first, err := svc.GetOrCreate(context.Background(), uuid.New(), "sam@a.com", "")
	require.NoError(t, err)
	require.NotNil(t, first.Username)

	second, err := svc.GetOrCreate(context.Background(), uuid.New(), "sam@b.com", "")
	require.NoError(t, err)
	assert.Nil(t, second.Username, "collision falls back to unset username")
}

func TestGetOrCreate_UnsafeEmailLeavesUsernameUnset(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	got, err := svc.GetOrCreate(context.Background(), uuid.New(), "Ünsafe Name@example.com", "")

	require.NoError(t, err)
	assert.Nil(t, got.Username)
}

func TestUpdate_UsernameTaken(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	taken := "collector"
	repo.profiles[uuid.New()] = &profile.Profile{UserID: uuid.New(), Username: &taken}

	me := uuid.New()
	repo.profiles[me] = &profile.Profile{UserID: me}

	req := profile.UpdateProfileRequest{Username: patch.NewValue("collector")}
	_, err := svc.Update(context.Background(), me, req)

	assert.ErrorIs(t, err, profile.ErrUsernameTaken)
}

func TestUpdate_KeepOwnUsername(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	me := uuid.New()
	mine := "collector"
	repo.profiles[me] = &profile.Profile{UserID: me, Username: &mine}

	// resubmitting your own username is not a collision
	req := profile.UpdateProfileRequest{
		Username: patch.NewValue("collector"),
		FullName: patch.NewValue("New Name"),
	}
	got, err := svc.Update(context.Background(), me, req)

	require.NoError(t, err)
	assert.Equal(t, "New Name", *got.FullName)
}

func TestUpdate_NullClearsUsername(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	me := uuid.New()
	repo.profiles[me] = &profile.Profile{UserID: me, Username: strPtr("collector")}

	req := profile.UpdateProfileRequest{Username: patch.NewNull[string]()}
	got, err := svc.Update(context.Background(), me, req)

	require.NoError(t, err)
	assert.Nil(t, got.Username)
}

func TestUpdate_InvalidUsernameRejected(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	me := uuid.New()
	repo.profiles[me] = &profile.Profile{UserID: me}

	req := profile.UpdateProfileRequest{Username: patch.NewValue("Not Valid!")}
	_, err := svc.Update(context.Background(), me, req)

	require.Error(t, err)
}

func TestUpdate_MissingProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	req := profile.UpdateProfileRequest{FullName: patch.NewValue("Ghost")}
	_, err := svc.Update(context.Background(), uuid.New(), req)

	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestUpdate_NoChangesReturnsCurrentRow(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	me := uuid.New()
	repo.profiles[me] = &profile.Profile{UserID: me, Username: strPtr("collector")}

	got, err := svc.Update(context.Background(), me, profile.UpdateProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, "collector", *got.Username)
}
