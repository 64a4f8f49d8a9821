package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Shradhesh0/sweet-shop-mgmt/internal/models"
)

func TestSweetPatchFields(t *testing.T) {
	assert.True(t, models.SweetPatch{}.Empty())
	assert.Empty(t, models.SweetPatch{}.Fields())

	name := "Nougat"
	price := 2.25
	patch := models.SweetPatch{Name: &name, Price: &price}
	assert.False(t, patch.Empty())

	fields := patch.Fields()
	assert.Equal(t, map[string]interface{}{
		"name":  "Nougat",
		"price": 2.25,
	}, fields)

	// A present-but-zero field still counts as listed.
	quantity := 0
	empty := ""
	patch = models.SweetPatch{Quantity: &quantity, Description: &empty}
	fields = patch.Fields()
	assert.Equal(t, map[string]interface{}{
		"quantity":    0,
		"description": "",
	}, fields)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, models.RoleUser.Valid())
	assert.True(t, models.RoleAdmin.Valid())
	assert.False(t, models.Role("superadmin").Valid())
	assert.False(t, models.Role("").Valid())
}
