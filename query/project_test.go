package query

import (
	"testing"

	"github.com/poiesic/confsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSession(t *testing.T) {
	session := &core.Session{
		SessionIDInternal: "TU.3",
		Title:             "Hyperspectral Imaging",
		SessionType:       "Oral",
		Schedule:          core.Schedule{Date: "Tuesday, August 5", StartTime: "14:00", EndTime: "15:30"},
		Location:          "Room 204",
		Track:             "Optical Remote Sensing",
		Papers: []core.Paper{
			{
				PaperIDInternal: "TU.3.1",
				Title:           "Spectral Unmixing at Scale",
				Authors: []core.Author{
					{
						FullName: "Maria Lopez",
						Affiliations: []core.Affiliation{
							{Institution: "MIT", Country: "USA"},
							{Institution: "Stanford University", Country: "USA"},
						},
					},
					{FullName: "Wei Zhang"},
				},
			},
			{
				PaperIDInternal: "TU.3.2",
				Title:           "Band Selection Revisited",
			},
		},
	}

	result := ProjectSession(session)

	assert.Equal(t, "Hyperspectral Imaging", result.SessionTitle)
	assert.Equal(t, "TU.3", result.SessionID)
	assert.Equal(t, "Oral", result.SessionType)
	assert.Equal(t, session.Schedule, result.Schedule)
	assert.Equal(t, "Room 204", result.Location)
	assert.Equal(t, "Optical Remote Sensing", result.Track)

	// Session-granular inclusion: every paper is carried, even the one with no
	// authors.
	require.Len(t, result.Papers, 2)
	assert.Equal(t, "Spectral Unmixing at Scale", result.Papers[0].PaperTitle)
	assert.Equal(t, "TU.3.1", result.Papers[0].PaperID)
	assert.Empty(t, result.Papers[1].Authors)

	// Only the first listed affiliation's institution is surfaced.
	require.Len(t, result.Papers[0].Authors, 2)
	assert.Equal(t, core.AuthorProfile{FullName: "Maria Lopez", Institution: "MIT"}, result.Papers[0].Authors[0])
	assert.Equal(t, core.AuthorProfile{FullName: "Wei Zhang", Institution: ""}, result.Papers[0].Authors[1])
}

func TestProjectSession_NoPapers(t *testing.T) {
	result := ProjectSession(&core.Session{SessionIDInternal: "MO.1", Title: "Opening Plenary"})

	assert.NotNil(t, result.Papers)
	assert.Empty(t, result.Papers)
}
