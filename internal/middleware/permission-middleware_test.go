package middleware

import (
	"net/http"
	"testing"

	"github.com/FRANKLIN09020/Smart-Inventory-Control-System/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestPermit_NoIdentity(t *testing.T) {
	rec := gateRequest(t, Permit("users:read"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPermit_NoPermissionSet(t *testing.T) {
	rec := gateRequest(t, Permit("users:read"), &utils.Claims{Sub: "user-1", Role: "ADMIN"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPermit_PartialMatchInsufficient(t *testing.T) {
	claims := &utils.Claims{Sub: "user-1", Permissions: []string{"users:read"}}
	rec := gateRequest(t, Permit("users:read", "users:write"), claims)
	assert.Equal(t, http.StatusForbidden, rec.Code, "all required permissions must be present")
}

func TestPermit_AllPresent(t *testing.T) {
	claims := &utils.Claims{Sub: "user-1", Permissions: []string{"users:write", "users:read", "reports:read"}}
	rec := gateRequest(t, Permit("users:read", "users:write"), claims)
	assert.Equal(t, http.StatusOK, rec.Code)
}
