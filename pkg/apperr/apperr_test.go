package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsMatchesByKind(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindStorageWrite, "create_document", "insert into search failed", cause)

	assert.True(t, errors.Is(err, ErrStorageWrite))
	assert.False(t, errors.Is(err, ErrStorageRead))
	assert.True(t, errors.Is(err, cause))

	wrapped := fmt.Errorf("handler: %w", err)
	assert.True(t, errors.Is(wrapped, ErrStorageWrite))
	assert.Equal(t, KindStorageWrite, KindOf(wrapped))
}

func TestErrorMessage(t *testing.T) {
	err := Wrap(KindStorageRead, "get_documents", "find failed", errors.New("timeout"))
	assert.Equal(t, "get_documents: find failed: timeout", err.Error())
	assert.Equal(t, "storage unavailable", ErrStorageUnavailable.Error())
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusOf(ErrStorageUnavailable))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusOf(New(KindValidation, "bad")))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}
