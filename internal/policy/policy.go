package policy

import (
	"github.com/funvibe/funkos/internal/space"
)

// Kind tags the closed set of iteration policy variants. Adapters switch
// on Kind rather than inspecting concrete types, so unsupported variants
// surface as explicit errors instead of silent fallthrough.
type Kind int

const (
	KindRange Kind = iota
	KindMDRange
	KindTeam
	KindTeamThreadRange
)

var kindNames = map[Kind]string{
	KindRange:           "RangePolicy",
	KindMDRange:         "MDRangePolicy",
	KindTeam:            "TeamPolicy",
	KindTeamThreadRange: "TeamThreadRange",
}

func (k Kind) String() string {
	return kindNames[k]
}

// ExecutionPolicy is the iteration policy of a dispatch. Arity is the
// number of leading workunit parameters the policy itself binds (index
// components or the team handle).
type ExecutionPolicy interface {
	Kind() Kind
	Arity() int
	Space() space.ExecutionSpace
}

// RangePolicy iterates a flat index range [Begin, End).
type RangePolicy struct {
	ExecSpace space.ExecutionSpace
	Begin     int
	End       int
}

func NewRangePolicy(s space.ExecutionSpace, begin, end int) RangePolicy {
	return RangePolicy{ExecSpace: s, Begin: begin, End: end}
}

func (p RangePolicy) Kind() Kind                  { return KindRange }
func (p RangePolicy) Arity() int                  { return 1 }
func (p RangePolicy) Space() space.ExecutionSpace { return p.ExecSpace }

// MDRangePolicy iterates a multi-dimensional index range; Begin and End
// must have equal length, one entry per dimension.
type MDRangePolicy struct {
	ExecSpace space.ExecutionSpace
	Begin     []int
	End       []int
}

func NewMDRangePolicy(s space.ExecutionSpace, begin, end []int) MDRangePolicy {
	return MDRangePolicy{ExecSpace: s, Begin: begin, End: end}
}

func (p MDRangePolicy) Kind() Kind                  { return KindMDRange }
func (p MDRangePolicy) Arity() int                  { return len(p.Begin) }
func (p MDRangePolicy) Space() space.ExecutionSpace { return p.ExecSpace }

// TeamPolicy iterates a league of teams; the workunit's first parameter is
// the team handle.
type TeamPolicy struct {
	ExecSpace  space.ExecutionSpace
	LeagueSize int
	TeamSize   int
}

func NewTeamPolicy(s space.ExecutionSpace, leagueSize, teamSize int) TeamPolicy {
	return TeamPolicy{ExecSpace: s, LeagueSize: leagueSize, TeamSize: teamSize}
}

func (p TeamPolicy) Kind() Kind                  { return KindTeam }
func (p TeamPolicy) Arity() int                  { return 1 }
func (p TeamPolicy) Space() space.ExecutionSpace { return p.ExecSpace }

// TeamThreadRange iterates a flat range nested inside a team.
type TeamThreadRange struct {
	ExecSpace space.ExecutionSpace
	Begin     int
	End       int
}

func NewTeamThreadRange(s space.ExecutionSpace, begin, end int) TeamThreadRange {
	return TeamThreadRange{ExecSpace: s, Begin: begin, End: end}
}

func (p TeamThreadRange) Kind() Kind                  { return KindTeamThreadRange }
func (p TeamThreadRange) Arity() int                  { return 1 }
func (p TeamThreadRange) Space() space.ExecutionSpace { return p.ExecSpace }
