package frogger

import "fmt"

// CollisionMessage is the notification text for a collision.
const CollisionMessage = "Collision!"

// CollisionEvent describes the hit that sent the player back to spawn.
type CollisionEvent struct {
	Tick     uint64
	Set      string  // Name of the obstacle set that was hit
	Obstacle int     // Index of the obstacle within the set
	X, Y     float64 // Player centre before the reset
}

// String formats the event for logs.
func (e CollisionEvent) String() string {
	return fmt.Sprintf("%s set=%s obstacle=%d at=(%.0f,%.0f)", CollisionMessage, e.Set, e.Obstacle, e.X, e.Y)
}

// CheckCollisions tests the player against every obstacle in every set. On
// the first overlap it resets the player to spawn and returns the event; when
// nothing overlaps it returns nil. Which overlap wins when several occur is
// unspecified, the effect is the same.
func CheckCollisions(p *Player, sets []*ObstacleSet) *CollisionEvent {
	c := p.Circle()
	for _, s := range sets {
		if i := s.Hit(c); i >= 0 {
			ev := &CollisionEvent{Set: s.Name, Obstacle: i, X: p.X, Y: p.Y}
			p.Respawn()
			return ev
		}
	}
	return nil
}
