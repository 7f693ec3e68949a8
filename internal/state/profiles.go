package state

import (
	"sync"

	"github.com/codementorhq/codementor-go/internal/domain/entity"
)

// ProfilesState caches the viewed profile, its thread list and the
// current user's follow relationships as id lists. Following a user does
// not touch the viewed profile's follower counter; that number belongs to
// the server.
type ProfilesState struct {
	Current   *entity.Profile
	Threads   []entity.Thread
	Followers []string
	Following []string
}

// ThreadPatch is a partial update applied to one thread by id.
type ThreadPatch struct {
	Content  *string
	Likes    *int
	Comments *int
	Shares   *int
	Liked    *bool
}

// ReduceSetProfile replaces the viewed profile.
func ReduceSetProfile(s ProfilesState, p *entity.Profile) ProfilesState {
	s.Current = p
	return s
}

// ReduceSetThreads replaces the thread list.
func ReduceSetThreads(s ProfilesState, threads []entity.Thread) ProfilesState {
	s.Threads = threads
	return s
}

// ReduceAddThread prepends a newly created thread.
func ReduceAddThread(s ProfilesState, t entity.Thread) ProfilesState {
	s.Threads = append([]entity.Thread{t}, s.Threads...)
	return s
}

// ReduceUpdateThread patches one thread by id. Unknown ids are a no-op.
func ReduceUpdateThread(s ProfilesState, id string, patch ThreadPatch) ProfilesState {
	updated := make([]entity.Thread, len(s.Threads))
	copy(updated, s.Threads)
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		if patch.Content != nil {
			updated[i].Content = *patch.Content
		}
		if patch.Likes != nil {
			updated[i].Likes = *patch.Likes
		}
		if patch.Comments != nil {
			updated[i].Comments = *patch.Comments
		}
		if patch.Shares != nil {
			updated[i].Shares = *patch.Shares
		}
		if patch.Liked != nil {
			updated[i].Liked = *patch.Liked
		}
	}
	s.Threads = updated
	return s
}

// ReduceFollow adds a user id to the following list once.
func ReduceFollow(s ProfilesState, userID string) ProfilesState {
	for _, id := range s.Following {
		if id == userID {
			return s
		}
	}
	s.Following = append(append([]string{}, s.Following...), userID)
	return s
}

// ReduceUnfollow removes a user id from the following list.
func ReduceUnfollow(s ProfilesState, userID string) ProfilesState {
	out := make([]string, 0, len(s.Following))
	for _, id := range s.Following {
		if id != userID {
			out = append(out, id)
		}
	}
	s.Following = out
	return s
}

// Profiles owns the profile state.
type Profiles struct {
	mu    sync.Mutex
	state ProfilesState
}

func NewProfiles() *Profiles { return &Profiles{} }

// State returns a snapshot of the profile state.
func (p *Profiles) State() ProfilesState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Thread returns one thread by id.
func (p *Profiles) Thread(id string) (entity.Thread, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.state.Threads {
		if t.ID == id {
			return t, true
		}
	}
	return entity.Thread{}, false
}

// IsFollowing reports whether userID is in the following list.
func (p *Profiles) IsFollowing(userID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range p.state.Following {
		if id == userID {
			return true
		}
	}
	return false
}

// SetProfile replaces the viewed profile.
func (p *Profiles) SetProfile(profile *entity.Profile) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceSetProfile(p.state, profile)
}

// SetThreads replaces the thread list.
func (p *Profiles) SetThreads(threads []entity.Thread) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceSetThreads(p.state, threads)
}

// AddThread prepends a newly created thread.
func (p *Profiles) AddThread(t entity.Thread) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceAddThread(p.state, t)
}

// UpdateThread patches one thread by id.
func (p *Profiles) UpdateThread(id string, patch ThreadPatch) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceUpdateThread(p.state, id, patch)
}

// Follow adds a user id to the following list.
func (p *Profiles) Follow(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceFollow(p.state, userID)
}

// Unfollow removes a user id from the following list.
func (p *Profiles) Unfollow(userID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = ReduceUnfollow(p.state, userID)
}
