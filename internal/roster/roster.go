// Package roster is the demo data model: users arranged in groups.
package roster

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
)

var (
	ErrUnknownUser  = errors.New("roster: unknown user")
	ErrUnknownGroup = errors.New("roster: unknown group")
)

const (
	defaultGroups        = 2
	defaultUsersPerGroup = 5
)

var (
	firstNames = []string{"Luna", "Kai", "Nova", "Ezra", "Milo", "Zara", "Leo", "Ivy"}
	lastNames  = []string{"Rivera", "Stone", "Blake", "Wilder", "Quinn", "Hart", "Fox", "Skye"}
)

// User is one draggable entry. Index is the user's slot within its group.
type User struct {
	ID    string
	Name  string
	Index int
}

// ItemID implements dnd.Item.
func (u User) ItemID() string { return u.ID }

// SetIndex writes a slot into u. Passed to sortable groups as SetPosition.
func SetIndex(u *User, i int) { u.Index = i }

// Group is an ordered list of users.
type Group struct {
	ID    string
	Index int
	Users []User
}

// Roster holds every group. It is not safe for concurrent use; the engine
// and the roster live on the same frame loop.
type Roster struct {
	groups        []Group
	usersPerGroup int
	rng           *rand.Rand
	log           *slog.Logger
}

// Option configures a Roster.
type Option func(*Roster)

// WithLogger sets the logger used for warnings about unknown ids.
func WithLogger(l *slog.Logger) Option {
	return func(r *Roster) { r.log = l }
}

// WithSeed makes generated names deterministic.
func WithSeed(seed uint64) Option {
	return func(r *Roster) { r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithUsersPerGroup sets how many users a new group is seeded with.
func WithUsersPerGroup(n int) Option {
	return func(r *Roster) { r.usersPerGroup = max(n, 0) }
}

// New creates a roster with groups groups of generated users.
func New(groups int, opts ...Option) *Roster {
	r := &Roster{usersPerGroup: defaultUsersPerGroup}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if r.log == nil {
		r.log = slog.Default()
	}
	if groups < 0 {
		groups = defaultGroups
	}
	for range groups {
		r.AddGroup()
	}
	return r
}

// Default returns a roster with two groups of five users, like a fresh
// demo session.
func Default(opts ...Option) *Roster {
	return New(defaultGroups, opts...)
}

// Groups returns a deep copy of every group in display order.
func (r *Roster) Groups() []Group {
	out := make([]Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = Group{ID: g.ID, Index: g.Index, Users: slices.Clone(g.Users)}
	}
	return out
}

// Group returns a copy of the group with id.
func (r *Roster) Group(id string) (Group, bool) {
	i := r.groupIndex(id)
	if i == -1 {
		return Group{}, false
	}
	g := r.groups[i]
	return Group{ID: g.ID, Index: g.Index, Users: slices.Clone(g.Users)}, true
}

// Len returns the number of groups.
func (r *Roster) Len() int { return len(r.groups) }

// AddGroup appends a group seeded with generated users and returns a copy.
func (r *Roster) AddGroup() Group {
	g := Group{ID: uuid.NewString(), Index: len(r.groups)}
	for i := range r.usersPerGroup {
		g.Users = append(g.Users, User{ID: uuid.NewString(), Name: r.randomName(), Index: i})
	}
	r.groups = append(r.groups, g)
	r.log.Debug("group added", "group", g.ID, "users", len(g.Users))
	return Group{ID: g.ID, Index: g.Index, Users: slices.Clone(g.Users)}
}

// FindUser returns the user with id and the id of the group holding it.
func (r *Roster) FindUser(id string) (User, string, bool) {
	for _, g := range r.groups {
		for _, u := range g.Users {
			if u.ID == id {
				return u, g.ID, true
			}
		}
	}
	return User{}, "", false
}

// MoveUser removes a user from its group and appends it to the group with
// toGroupID. Both groups are renumbered. Unknown ids leave the roster
// unchanged, log a warning and return ErrUnknownUser or ErrUnknownGroup.
func (r *Roster) MoveUser(userID, toGroupID string) error {
	from, at := -1, -1
	for i, g := range r.groups {
		if j := slices.IndexFunc(g.Users, func(u User) bool { return u.ID == userID }); j != -1 {
			from, at = i, j
			break
		}
	}
	to := r.groupIndex(toGroupID)
	if from == -1 || to == -1 {
		r.log.Warn("moveUser: invalid user or group", "user", userID, "group", toGroupID)
		if from == -1 {
			return fmt.Errorf("move %s: %w", userID, ErrUnknownUser)
		}
		return fmt.Errorf("move %s to %s: %w", userID, toGroupID, ErrUnknownGroup)
	}

	u := r.groups[from].Users[at]
	r.groups[from].Users = slices.Delete(slices.Clone(r.groups[from].Users), at, at+1)
	r.groups[to].Users = append(slices.Clone(r.groups[to].Users), u)
	renumber(r.groups[from].Users)
	renumber(r.groups[to].Users)
	r.log.Debug("user moved", "user", userID, "from", r.groups[from].ID, "to", toGroupID)
	return nil
}

// UpdateGroupUsers replaces a group's users, e.g. with the order produced
// by a sortable group. The slice is copied.
func (r *Roster) UpdateGroupUsers(groupID string, users []User) error {
	i := r.groupIndex(groupID)
	if i == -1 {
		r.log.Warn("updateGroupUsers: invalid group", "group", groupID)
		return fmt.Errorf("update %s: %w", groupID, ErrUnknownGroup)
	}
	r.groups[i].Users = slices.Clone(users)
	return nil
}

func (r *Roster) groupIndex(id string) int {
	return slices.IndexFunc(r.groups, func(g Group) bool { return g.ID == id })
}

func (r *Roster) randomName() string {
	return firstNames[r.rng.IntN(len(firstNames))] + " " + lastNames[r.rng.IntN(len(lastNames))]
}

func renumber(users []User) {
	for i := range users {
		users[i].Index = i
	}
}
