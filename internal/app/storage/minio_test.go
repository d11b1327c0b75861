package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"leadflow/internal/app/ds"
)

func TestObjectName(t *testing.T) {
	s := &ds.Submission{
		SubmissionID: "SUB-1772359200000-ABC123XYZ",
		SubmittedAt:  time.Date(2026, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC+3", 3*3600)),
	}
	assert.Equal(t, "submissions/2026/03/01/SUB-1772359200000-ABC123XYZ.json", ObjectName(s))
}

func TestArchiveDocument(t *testing.T) {
	s := &ds.Submission{
		SubmissionID: "SUB-1-AAAAAAAAA",
		CompanyName:  "Acme",
		SubmittedAt:  time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Data:         datatypes.JSON(`{"formType":"training","participants":12}`),
	}

	raw, err := archiveDocument(s)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "SUB-1-AAAAAAAAA", doc["id"])
	assert.Equal(t, "training", doc["data"].(map[string]any)["formType"])
	assert.NotContains(t, doc, "pricing")

	s.Pricing = datatypes.JSON(`{"totalInvestment":5}`)
	raw, err = archiveDocument(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"totalInvestment": 5`)
}
