package manager

import (
	"snake-planner/game/entity"
	"snake-planner/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckHazardCollision reports whether the head or any body segment shares
// a cell with a hazard.
func (cm *CollisionManager) CheckHazardCollision(snake *entity.Snake, hazards []*entity.Hazard) bool {
	for _, h := range hazards {
		if snake.Occupies(h.Position) {
			return true
		}
	}
	return false
}

// HazardAt reports whether a hazard currently sits on pos.
func (cm *CollisionManager) HazardAt(pos types.Point, hazards []*entity.Hazard) bool {
	for _, h := range hazards {
		if h.Position == pos {
			return true
		}
	}
	return false
}

// isWallCollision checks if a position is off the board
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// ValidateStep reports whether the head may move to pos: on the board,
// adjacent to the head and not onto the body.
func (cm *CollisionManager) ValidateStep(snake *entity.Snake, pos types.Point) bool {
	if cm.isWallCollision(pos) {
		return false
	}
	if !types.Adjacent(snake.GetHead(), pos) {
		return false
	}
	// The tail cell is free after the move unless the snake is about to grow.
	for i, b := range snake.Body {
		if b != pos {
			continue
		}
		if i == 0 && !snake.GrowPending && len(snake.Body) > 1 {
			continue
		}
		return false
	}
	return true
}

// CheckFoodCollisions checks if pos is on any food
func (cm *CollisionManager) CheckFoodCollisions(pos types.Point, foodList []types.Point) (bool, types.Point) {
	for _, food := range foodList {
		if pos == food {
			return true, food
		}
	}
	return false, types.Point{}
}
