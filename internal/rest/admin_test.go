package rest

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubCacheClearer struct {
	clearedUserIDs []string
	err            error
}

func (s *stubCacheClearer) ClearCache(_ context.Context, userID string) error {
	s.clearedUserIDs = append(s.clearedUserIDs, userID)
	return s.err
}

type stubConfigCleaner struct {
	invalidatedKeys []string
	clears          int
}

func (s *stubConfigCleaner) Invalidate(_ context.Context, key string) {
	s.invalidatedKeys = append(s.invalidatedKeys, key)
}

func (s *stubConfigCleaner) Clear(_ context.Context) {
	s.clears++
}

func TestClearCacheForUser(t *testing.T) {
	clearer := &stubCacheClearer{}
	cleaner := &stubConfigCleaner{}
	h := NewAdminHandler(clearer, cleaner)

	rec := postJSON(t, h.ClearCache, `{"user_id": "user_001"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user_001"}, clearer.clearedUserIDs)
	assert.Zero(t, cleaner.clears)
}

func TestClearCacheForConfigKey(t *testing.T) {
	clearer := &stubCacheClearer{}
	cleaner := &stubConfigCleaner{}
	h := NewAdminHandler(clearer, cleaner)

	rec := postJSON(t, h.ClearCache, `{"config_key": "gamification.chests.gold"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"gamification.chests.gold"}, cleaner.invalidatedKeys)
	assert.Empty(t, clearer.clearedUserIDs)
}

func TestClearCacheAll(t *testing.T) {
	clearer := &stubCacheClearer{}
	cleaner := &stubConfigCleaner{}
	h := NewAdminHandler(clearer, cleaner)

	rec := postJSON(t, h.ClearCache, `{}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, cleaner.clears)
	assert.Equal(t, []string{""}, clearer.clearedUserIDs)
}

func TestClearCacheError(t *testing.T) {
	clearer := &stubCacheClearer{err: errors.New("redis down")}
	h := NewAdminHandler(clearer, &stubConfigCleaner{})

	rec := postJSON(t, h.ClearCache, `{"user_id": "user_001"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
