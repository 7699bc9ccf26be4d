package gamestate

import (
	"testing"

	"gridiron/sim/internal/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func driveRight(line, marker int, down Down) Possession {
	return Possession{Down: down, LineOfPossession: line, FirstDownLine: marker}
}

func TestPossession_FlipTwiceIsIdentity(t *testing.T) {
	for _, away := range []bool{false, true} {
		for _, left := range []bool{false, true} {
			p := Possession{PossessionAway: away, DirectionLeft: left}
			p.FlipPossession()
			assert.NotEqual(t, away, p.PossessionAway)
			assert.NotEqual(t, left, p.DirectionLeft)
			p.FlipPossession()
			assert.Equal(t, away, p.PossessionAway)
			assert.Equal(t, left, p.DirectionLeft)
		}
	}
}

func TestPossession_IncrementToGoalLineScores(t *testing.T) {
	for _, down := range []Down{DownFirst, DownSecond, DownThird, DownFourth, DownKickoff} {
		p := driveRight(40, 50, down)
		p.Increment(10)
		assert.Equal(t, DownPointAfter, p.Down, "down %s driving right", down)
		assert.Equal(t, GoalLine, p.LineOfPossession)

		p = Possession{Down: down, LineOfPossession: -45, FirstDownLine: -50, DirectionLeft: true}
		p.Increment(5)
		assert.Equal(t, DownPointAfter, p.Down, "down %s driving left", down)
		assert.Equal(t, -GoalLine, p.LineOfPossession)
	}
}

func TestPossession_IncrementClampsAtGoalLine(t *testing.T) {
	p := driveRight(40, 50, DownSecond)
	p.Increment(35)

	assert.Equal(t, GoalLine, p.LineOfPossession)
	assert.Equal(t, DownPointAfter, p.Down)

	p = driveRight(-45, -35, DownFirst)
	p.Increment(-20)
	assert.Equal(t, -GoalLine, p.LineOfPossession, "Losses clamp at the own goal line")
}

func TestPossession_IncrementFirstDown(t *testing.T) {
	p := driveRight(0, 10, DownThird)
	p.Increment(12)

	assert.Equal(t, DownFirst, p.Down)
	assert.Equal(t, 12, p.LineOfPossession)
	assert.Equal(t, 22, p.FirstDownLine)
}

func TestPossession_IncrementFirstDownMarkerClampsToGoal(t *testing.T) {
	p := driveRight(35, 45, DownSecond)
	p.Increment(10)

	assert.Equal(t, DownFirst, p.Down)
	assert.Equal(t, 45, p.LineOfPossession)
	assert.Equal(t, GoalLine, p.FirstDownLine)
	assert.Equal(t, "1st & Goal", p.DownAndDistance())
}

func TestPossession_IncrementAdvancesDown(t *testing.T) {
	p := driveRight(0, 10, DownFirst)

	p.Increment(2)
	assert.Equal(t, DownSecond, p.Down)
	p.Increment(2)
	assert.Equal(t, DownThird, p.Down)
	p.Increment(2)
	assert.Equal(t, DownFourth, p.Down)
	assert.Equal(t, 6, p.LineOfPossession)
	assert.Equal(t, 4, p.YardsToFirst())
}

func TestPossession_TurnoverOnDowns(t *testing.T) {
	p := driveRight(0, 10, DownFourth)
	p.Increment(3)

	assert.True(t, p.PossessionAway, "Possession should change hands")
	assert.True(t, p.DirectionLeft, "New offense should drive the other way")
	assert.Equal(t, DownFirst, p.Down)
	assert.Equal(t, 3, p.LineOfPossession)
	assert.Equal(t, -7, p.FirstDownLine)
	assert.Equal(t, 10, p.YardsToFirst())
}

func TestPossession_InvariantsHoldOverRandomDrives(t *testing.T) {
	rng := random.New(99)
	p := NewPossession()
	p.StartDrive()

	for i := 0; i < 2000; i++ {
		if p.Down == DownPointAfter {
			p.FlipPossession()
			p.SetYardLine(25, true)
			p.StartDrive()
		}

		p.Increment(rng.IntN(30) - 5)

		require.LessOrEqual(t, abs(p.LineOfPossession), GoalLine)
		if p.Down == DownFirst {
			want := clampLine(p.LineOfPossession + p.forward(FirstDownDistance))
			require.Equal(t, want, p.FirstDownLine, "First down marker must sit 10 yards downfield")
		}
	}
}

func TestPossession_SetYardLine(t *testing.T) {
	p := Possession{}
	p.SetYardLine(25, true)
	assert.Equal(t, -25, p.LineOfPossession)
	assert.Equal(t, 25, p.YardLine())
	assert.True(t, p.InOwnTerritory())
	assert.Equal(t, 75, p.YardsToEndzone())

	p.SetYardLine(10, false)
	assert.Equal(t, 40, p.LineOfPossession)
	assert.False(t, p.InOwnTerritory())
	assert.Equal(t, 10, p.YardsToEndzone())

	p = Possession{DirectionLeft: true}
	p.SetYardLine(25, true)
	assert.Equal(t, 25, p.LineOfPossession)
	assert.True(t, p.InOwnTerritory())
	assert.Equal(t, 75, p.YardsToEndzone())

	p.SetYardLine(70, true)
	assert.Equal(t, 0, p.LineOfPossession, "Yard lines past midfield clamp to 50")
}

func TestPossession_SwitchEnds(t *testing.T) {
	p := driveRight(-20, -10, DownSecond)
	p.SwitchEnds()

	assert.Equal(t, 20, p.LineOfPossession)
	assert.Equal(t, 10, p.FirstDownLine)
	assert.True(t, p.DirectionLeft)
	assert.Equal(t, 10, p.YardsToFirst())
	assert.True(t, p.InOwnTerritory())
}

func TestPossession_String(t *testing.T) {
	p := Possession{}
	p.SetYardLine(25, true)
	p.StartDrive()
	assert.Equal(t, "1st & 10 at own 25", p.String())

	p.Down = DownKickoff
	assert.Equal(t, "Kick at own 25", p.String())

	p.Down = DownPointAfter
	p.SetYardLine(2, false)
	assert.Equal(t, "PAT at opp 2", p.String())
}

func TestDown_Next(t *testing.T) {
	assert.Equal(t, DownSecond, DownFirst.Next())
	assert.Equal(t, DownThird, DownSecond.Next())
	assert.Equal(t, DownFourth, DownThird.Next())
	assert.Equal(t, DownFirst, DownFourth.Next())
	assert.Equal(t, DownKickoff, DownPointAfter.Next())
	assert.Equal(t, DownFirst, DownKickoff.Next())
}
