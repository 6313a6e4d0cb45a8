package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleMentor.IsValid())
	assert.True(t, RoleStudent.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("superuser").IsValid())
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
		ok   bool
	}{
		{in: "Admin", want: RoleAdmin, ok: true},
		{in: "admin", want: RoleAdmin, ok: true},
		{in: "MENTOR", want: RoleMentor, ok: true},
		{in: "Student", want: RoleStudent, ok: true},
		{in: "", want: RoleStudent, ok: true}, // Empty defaults to Student.
		{in: "professor", ok: false},
		{in: "Students", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseRole(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
