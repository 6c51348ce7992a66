package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kunstkamera-backend/internal/domains/museum"
)

type listCall struct {
	requesterID uuid.UUID
	target      *uuid.UUID
}

type fakeMuseumService struct {
	listCalls []listCall
	listOut   []*museum.MuseumWithMeta
	listErr   error
}

func (f *fakeMuseumService) Create(ctx context.Context, ownerID uuid.UUID, req *museum.CreateMuseumRequest) (*museum.MuseumWithMeta, error) {
	panic("unused")
}

func (f *fakeMuseumService) GetByID(ctx context.Context, requesterID, id uuid.UUID) (*museum.MuseumWithMeta, error) {
	panic("unused")
}

func (f *fakeMuseumService) List(ctx context.Context, requesterID uuid.UUID, targetUserID *uuid.UUID) ([]*museum.MuseumWithMeta, error) {
	f.listCalls = append(f.listCalls, listCall{requesterID: requesterID, target: targetUserID})
	return f.listOut, f.listErr
}

func (f *fakeMuseumService) Update(ctx context.Context, requesterID, id uuid.UUID, req museum.UpdateMuseumRequest) (*museum.MuseumWithMeta, error) {
	panic("unused")
}

func (f *fakeMuseumService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	panic("unused")
}

func (f *fakeMuseumService) Like(ctx context.Context, requesterID, id uuid.UUID) error {
	panic("unused")
}

func (f *fakeMuseumService) Unlike(ctx context.Context, requesterID, id uuid.UUID) error {
	panic("unused")
}

// newListRouter wires List the way the live router does: no auth gate, the
// principal is whatever the session middleware resolved, possibly nobody.
func newListRouter(svc museum.Service, principal uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if principal != uuid.Nil {
		r.Use(func(c *gin.Context) {
			c.Set("userID", principal)
		})
	}
	h := NewMuseumHandler(svc)
	r.GET("/api/v1/museums", h.List)
	return r
}

func TestListAnonymousNamingAnotherUser(t *testing.T) {
	other := uuid.New()
	svc := &fakeMuseumService{listOut: []*museum.MuseumWithMeta{}}
	r := newListRouter(svc, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/museums?userId="+other.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.listCalls, 1)
	assert.Equal(t, uuid.Nil, svc.listCalls[0].requesterID)
	require.NotNil(t, svc.listCalls[0].target)
	assert.Equal(t, other, *svc.listCalls[0].target)
}

func TestListAnonymousWithoutTargetRequiresSession(t *testing.T) {
	svc := &fakeMuseumService{}
	r := newListRouter(svc, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/museums", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.listCalls)
}

func TestListAuthenticatedDefaultsToOwnMuseums(t *testing.T) {
	self := uuid.New()
	svc := &fakeMuseumService{listOut: []*museum.MuseumWithMeta{}}
	r := newListRouter(svc, self)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/museums", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.listCalls, 1)
	assert.Equal(t, self, svc.listCalls[0].requesterID)
	assert.Nil(t, svc.listCalls[0].target)
}

func TestListRejectsMalformedUserID(t *testing.T) {
	svc := &fakeMuseumService{}
	r := newListRouter(svc, uuid.Nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/museums?userId=not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.listCalls)
}
