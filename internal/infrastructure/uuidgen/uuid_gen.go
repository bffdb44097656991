package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/Storefront/internal/domain/contract"
)

// Generator implements the contract.IUUIDGenerator interface.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// NewUUID generates a new random (v4) UUID.
func (g *Generator) NewUUID() string {
	return uuid.New().String()
}

// IsValid reports whether id is a well formed UUID in canonical form.
func IsValid(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)
