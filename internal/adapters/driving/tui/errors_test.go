package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	assert.NotEqual(t, ErrMissingCatalogBrowser.Error(), ErrInvalidPorts.Error())
}

func TestErrMissingCatalogBrowser_Message(t *testing.T) {
	assert.Contains(t, ErrMissingCatalogBrowser.Error(), "catalog browser")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
