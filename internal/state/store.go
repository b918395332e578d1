package state

import "github.com/appswitch/appswitch/internal/picker"

// CandidateStore holds the application sets the UI selects from. Accessors
// return defensive copies so callers cannot mutate the shared slices.
type CandidateStore interface {
	Running() []picker.Candidate
	SetRunning([]picker.Candidate)
	Installed() []picker.Candidate
	SetInstalled([]picker.Candidate)
	InstalledLoaded() bool
}

type candidateStore struct {
	running         []picker.Candidate
	installed       []picker.Candidate
	installedLoaded bool
}

func NewCandidateStore() CandidateStore {
	return &candidateStore{}
}

func (s *candidateStore) Running() []picker.Candidate {
	return cloneCandidates(s.running)
}

func (s *candidateStore) SetRunning(candidates []picker.Candidate) {
	s.running = cloneCandidates(candidates)
}

func (s *candidateStore) Installed() []picker.Candidate {
	return cloneCandidates(s.installed)
}

func (s *candidateStore) SetInstalled(candidates []picker.Candidate) {
	s.installed = cloneCandidates(candidates)
	s.installedLoaded = true
}

func (s *candidateStore) InstalledLoaded() bool {
	return s.installedLoaded
}

func cloneCandidates(candidates []picker.Candidate) []picker.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	dup := make([]picker.Candidate, len(candidates))
	copy(dup, candidates)
	return dup
}
