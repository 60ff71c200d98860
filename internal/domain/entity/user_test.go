package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/hubber-api/internal/domain/entity"
)

func TestCompanyLimit_PorPlan(t *testing.T) {
	assert.Equal(t, 1, entity.CompanyLimit(entity.TierFree))
	assert.Equal(t, 1, entity.CompanyLimit(entity.TierBasic))
	assert.Equal(t, 10, entity.CompanyLimit(entity.TierPremium))
	assert.Equal(t, 1, entity.CompanyLimit("plan-desconocido"),
		"un plan desconocido se trata como el cupo mínimo")
}

func TestCompanyHasClient(t *testing.T) {
	c := entity.Company{Clients: []string{"cl-1", "cl-2"}}
	assert.True(t, c.HasClient("cl-1"))
	assert.False(t, c.HasClient("cl-3"))
	assert.False(t, (&entity.Company{}).HasClient("cl-1"))
}
