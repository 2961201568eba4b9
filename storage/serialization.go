// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/confsearch/core"
)

// MUS serializers for the record types stored in BadgerDB. Slices are
// encoded as a varint length followed by the elements.

// IDMUS serializes core.ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (s idMUS) Marshal(v core.ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v core.ID, n int, err error) {
	u, n, err := varint.Uint64.Unmarshal(bs)
	return core.ID(u), n, err
}

func (s idMUS) Size(v core.ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// AffiliationMUS serializes core.Affiliation values.
var AffiliationMUS = affiliationMUS{}

type affiliationMUS struct{}

func (s affiliationMUS) Marshal(v core.Affiliation, bs []byte) (n int) {
	n = ord.String.Marshal(v.Institution, bs)
	n += ord.String.Marshal(v.Country, bs[n:])
	return n
}

func (s affiliationMUS) Unmarshal(bs []byte) (v core.Affiliation, n int, err error) {
	v.Institution, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Country, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s affiliationMUS) Size(v core.Affiliation) (size int) {
	return ord.String.Size(v.Institution) + ord.String.Size(v.Country)
}

// AuthorMUS serializes core.Author values.
var AuthorMUS = authorMUS{}

type authorMUS struct{}

func (s authorMUS) Marshal(v core.Author, bs []byte) (n int) {
	n = ord.String.Marshal(v.FullName, bs)
	n += varint.Int.Marshal(len(v.Affiliations), bs[n:])
	for _, affiliation := range v.Affiliations {
		n += AffiliationMUS.Marshal(affiliation, bs[n:])
	}
	return n
}

func (s authorMUS) Unmarshal(bs []byte) (v core.Author, n int, err error) {
	v.FullName, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var count, n1 int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count < 0 {
		err = fmt.Errorf("%w: negative affiliation count", ErrSerializationFailed)
		return
	}
	if count > 0 {
		v.Affiliations = make([]core.Affiliation, count)
		for i := 0; i < count; i++ {
			v.Affiliations[i], n1, err = AffiliationMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	return
}

func (s authorMUS) Size(v core.Author) (size int) {
	size = ord.String.Size(v.FullName) + varint.Int.Size(len(v.Affiliations))
	for _, affiliation := range v.Affiliations {
		size += AffiliationMUS.Size(affiliation)
	}
	return size
}

// PaperMUS serializes core.Paper values.
var PaperMUS = paperMUS{}

type paperMUS struct{}

func (s paperMUS) Marshal(v core.Paper, bs []byte) (n int) {
	n = ord.String.Marshal(v.PaperIDInternal, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += varint.Int.Marshal(len(v.Authors), bs[n:])
	for _, author := range v.Authors {
		n += AuthorMUS.Marshal(author, bs[n:])
	}
	return n
}

func (s paperMUS) Unmarshal(bs []byte) (v core.Paper, n int, err error) {
	v.PaperIDInternal, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var count int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count < 0 {
		err = fmt.Errorf("%w: negative author count", ErrSerializationFailed)
		return
	}
	if count > 0 {
		v.Authors = make([]core.Author, count)
		for i := 0; i < count; i++ {
			v.Authors[i], n1, err = AuthorMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	return
}

func (s paperMUS) Size(v core.Paper) (size int) {
	size = ord.String.Size(v.PaperIDInternal) + ord.String.Size(v.Title)
	size += varint.Int.Size(len(v.Authors))
	for _, author := range v.Authors {
		size += AuthorMUS.Size(author)
	}
	return size
}

// ScheduleMUS serializes core.Schedule values.
var ScheduleMUS = scheduleMUS{}

type scheduleMUS struct{}

func (s scheduleMUS) Marshal(v core.Schedule, bs []byte) (n int) {
	n = ord.String.Marshal(v.Date, bs)
	n += ord.String.Marshal(v.StartTime, bs[n:])
	n += ord.String.Marshal(v.EndTime, bs[n:])
	return n
}

func (s scheduleMUS) Unmarshal(bs []byte) (v core.Schedule, n int, err error) {
	v.Date, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.StartTime, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EndTime, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s scheduleMUS) Size(v core.Schedule) (size int) {
	return ord.String.Size(v.Date) + ord.String.Size(v.StartTime) + ord.String.Size(v.EndTime)
}

// SessionMUS serializes core.Session values, papers and authors included.
var SessionMUS = sessionMUS{}

type sessionMUS struct{}

func (s sessionMUS) Marshal(v core.Session, bs []byte) (n int) {
	n = ord.String.Marshal(v.SessionIDInternal, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.SessionType, bs[n:])
	n += ScheduleMUS.Marshal(v.Schedule, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += ord.String.Marshal(v.Track, bs[n:])
	n += varint.Int.Marshal(len(v.Papers), bs[n:])
	for _, paper := range v.Papers {
		n += PaperMUS.Marshal(paper, bs[n:])
	}
	return n
}

func (s sessionMUS) Unmarshal(bs []byte) (v core.Session, n int, err error) {
	v.SessionIDInternal, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SessionType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Schedule, n1, err = ScheduleMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Track, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var count int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count < 0 {
		err = fmt.Errorf("%w: negative paper count", ErrSerializationFailed)
		return
	}
	if count > 0 {
		v.Papers = make([]core.Paper, count)
		for i := 0; i < count; i++ {
			v.Papers[i], n1, err = PaperMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	return
}

func (s sessionMUS) Size(v core.Session) (size int) {
	size = ord.String.Size(v.SessionIDInternal) + ord.String.Size(v.Title) + ord.String.Size(v.SessionType)
	size += ScheduleMUS.Size(v.Schedule)
	size += ord.String.Size(v.Location) + ord.String.Size(v.Track)
	size += varint.Int.Size(len(v.Papers))
	for _, paper := range v.Papers {
		size += PaperMUS.Size(paper)
	}
	return size
}

// DayInfoMUS serializes DayInfo values.
var DayInfoMUS = dayInfoMUS{}

type dayInfoMUS struct{}

func (s dayInfoMUS) Marshal(v DayInfo, bs []byte) (n int) {
	n = ord.String.Marshal(v.Date, bs)
	n += ord.String.Marshal(v.DayOfWeek, bs[n:])
	return n
}

func (s dayInfoMUS) Unmarshal(bs []byte) (v DayInfo, n int, err error) {
	v.Date, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.DayOfWeek, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s dayInfoMUS) Size(v DayInfo) (size int) {
	return ord.String.Size(v.Date) + ord.String.Size(v.DayOfWeek)
}

// ProgramInfoMUS serializes ProgramInfo values.
var ProgramInfoMUS = programInfoMUS{}

type programInfoMUS struct{}

func (s programInfoMUS) Marshal(v ProgramInfo, bs []byte) (n int) {
	n = ord.String.Marshal(v.Name, bs)
	n += ord.String.Marshal(v.Dates, bs[n:])
	n += ord.String.Marshal(v.Location, bs[n:])
	n += varint.Int.Marshal(len(v.Days), bs[n:])
	for _, day := range v.Days {
		n += DayInfoMUS.Marshal(day, bs[n:])
	}
	n += varint.Int.Marshal(v.TotalSessions, bs[n:])
	n += varint.Int.Marshal(v.TotalPapers, bs[n:])
	return n
}

func (s programInfoMUS) Unmarshal(bs []byte) (v ProgramInfo, n int, err error) {
	v.Name, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Dates, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Location, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var count int
	count, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if count < 0 {
		err = fmt.Errorf("%w: negative day count", ErrSerializationFailed)
		return
	}
	if count > 0 {
		v.Days = make([]DayInfo, count)
		for i := 0; i < count; i++ {
			v.Days[i], n1, err = DayInfoMUS.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	v.TotalSessions, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TotalPapers, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s programInfoMUS) Size(v ProgramInfo) (size int) {
	size = ord.String.Size(v.Name) + ord.String.Size(v.Dates) + ord.String.Size(v.Location)
	size += varint.Int.Size(len(v.Days))
	for _, day := range v.Days {
		size += DayInfoMUS.Size(day)
	}
	size += varint.Int.Size(v.TotalSessions) + varint.Int.Size(v.TotalPapers)
	return size
}

// MarshalSession serializes a Session to bytes.
func MarshalSession(session *core.Session) []byte {
	buf := make([]byte, SessionMUS.Size(*session))
	SessionMUS.Marshal(*session, buf)
	return buf
}

// UnmarshalSession deserializes a Session from bytes.
func UnmarshalSession(data []byte) (*core.Session, error) {
	session, _, err := SessionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// MarshalProgramInfo serializes a ProgramInfo to bytes.
func MarshalProgramInfo(info *ProgramInfo) []byte {
	buf := make([]byte, ProgramInfoMUS.Size(*info))
	ProgramInfoMUS.Marshal(*info, buf)
	return buf
}

// UnmarshalProgramInfo deserializes a ProgramInfo from bytes.
func UnmarshalProgramInfo(data []byte) (*ProgramInfo, error) {
	info, _, err := ProgramInfoMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, IDMUS.Size(id))
	IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := IDMUS.Unmarshal(data)
	return id, err
}
