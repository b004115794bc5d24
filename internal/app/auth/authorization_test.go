package auth

import (
	"testing"

	"github.com/campushub/backend/internal/app/models"
)

func TestIsOwner(t *testing.T) {
	teacher := &models.Principal{ID: 5, Role: models.RoleTeacher}

	if !IsOwner(teacher, 5) {
		t.Error("creator not recognized as owner")
	}
	if IsOwner(teacher, 6) {
		t.Error("non-creator recognized as owner")
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(&models.Principal{ID: 1, Role: models.RoleAdmin}) {
		t.Error("admin not recognized")
	}
	if IsAdmin(&models.Principal{ID: 1, Role: models.RoleTeacher}) {
		t.Error("teacher recognized as admin")
	}
	if IsAdmin(&models.Principal{ID: 1, Role: models.RoleStudent}) {
		t.Error("student recognized as admin")
	}
}
