package storage

import (
	"testing"

	"github.com/poiesic/confsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionSerialization(t *testing.T) {
	session := &core.Session{
		SessionIDInternal: "WE.P1",
		Title:             "SAR Poster Session",
		SessionType:       "Poster",
		Schedule: core.Schedule{
			Date:      "Wednesday, August 6",
			StartTime: "09:00",
			EndTime:   "10:30",
		},
		Location: "Hall A",
		Track:    "Microwave Remote Sensing",
		Papers: []core.Paper{
			{
				PaperIDInternal: "WE.P1.1",
				Title:           "Ship Detection in SAR Imagery",
				Authors: []core.Author{
					{
						FullName: "Jane Chen",
						Affiliations: []core.Affiliation{
							{Institution: "MIT", Country: "USA"},
							{Institution: "Stanford", Country: "USA"},
						},
					},
					{
						FullName:     "Li Wei",
						Affiliations: nil,
					},
				},
			},
			{
				PaperIDInternal: "WE.P1.2",
				Title:           "Flood Mapping with Sentinel-1",
				Authors:         nil,
			},
		},
	}

	data := MarshalSession(session)
	require.NotEmpty(t, data)
	assert.Len(t, data, SessionMUS.Size(*session))

	decoded, err := UnmarshalSession(data)
	require.NoError(t, err)
	assert.Equal(t, session, decoded)
}

func TestSessionSerialization_Empty(t *testing.T) {
	session := &core.Session{SessionIDInternal: "S1", Title: "Panel"}

	decoded, err := UnmarshalSession(MarshalSession(session))
	require.NoError(t, err)
	assert.Equal(t, session, decoded)
}

func TestSessionSerialization_Truncated(t *testing.T) {
	session := &core.Session{
		SessionIDInternal: "WE.P1",
		Title:             "SAR Poster Session",
		SessionType:       "Poster",
	}
	data := MarshalSession(session)

	_, err := UnmarshalSession(data[:len(data)/2])
	assert.Error(t, err)
}

func TestProgramInfoSerialization(t *testing.T) {
	info := &ProgramInfo{
		Name:     "IGARSS 2025",
		Dates:    "August 3-8, 2025",
		Location: "Brisbane, Australia",
		Days: []DayInfo{
			{Date: "2025-08-04", DayOfWeek: "Monday"},
			{Date: "2025-08-05", DayOfWeek: "Tuesday"},
		},
		TotalSessions: 42,
		TotalPapers:   317,
	}

	decoded, err := UnmarshalProgramInfo(MarshalProgramInfo(info))
	require.NoError(t, err)
	assert.Equal(t, info, decoded)
}

func TestIDSerialization(t *testing.T) {
	id := core.IDFromContent("WE.P1")

	decoded, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}
