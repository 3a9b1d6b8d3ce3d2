package handler

import (
	"time"

	"github.com/Atlas00000/sharevoices/internal/domain"
)

// TimeFormat is used for every timestamp in API responses.
const TimeFormat = time.RFC3339

// writerRoles may create, edit, publish and restore articles and read their history.
var writerRoles = []string{domain.RoleAdmin, domain.RoleEditor, domain.RoleAuthor}
