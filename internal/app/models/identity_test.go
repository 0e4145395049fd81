package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityCanModify(t *testing.T) {
	admin := Identity{ID: "admin-1", Role: RoleAdmin}
	member := Identity{ID: "member-1", Role: RoleMember}

	assert.True(t, admin.CanModify("someone-else"))
	assert.True(t, admin.CanModify("admin-1"))

	assert.True(t, member.CanModify("member-1"))
	assert.False(t, member.CanModify("someone-else"))
	assert.False(t, member.CanModify(""))
}

func TestIdentityCanModifyEmptyID(t *testing.T) {
	anonymous := Identity{Role: RoleMember}
	assert.False(t, anonymous.CanModify(""))
}

func TestRoleTypeIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, RoleType("superuser").IsValid())
}

func TestPublicationTypeIsValid(t *testing.T) {
	assert.True(t, PublicationJournal.IsValid())
	assert.True(t, PublicationConference.IsValid())
	assert.False(t, PublicationType("poster").IsValid())
}

func TestTheseTypeIsValid(t *testing.T) {
	assert.True(t, TheseHDR.IsValid())
	assert.True(t, TheseDoctorat.IsValid())
	assert.False(t, TheseType("Doctorat").IsValid())
}

func TestMasterTypeIsValid(t *testing.T) {
	assert.True(t, MasterResearch.IsValid())
	assert.True(t, MasterPFE.IsValid())
	assert.False(t, MasterType("Stage").IsValid())
}

func TestActuCategoryIsValid(t *testing.T) {
	assert.True(t, ActuFormation.IsValid())
	assert.True(t, ActuConference.IsValid())
	assert.True(t, ActuLaboratoire.IsValid())
	assert.False(t, ActuCategory("Divers").IsValid())
}
