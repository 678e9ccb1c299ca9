package manager

import (
	"snake-planner/game/types"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

// FoodManager owns the food set. Iteration order is insertion order, which
// makes nearest-food tie breaking deterministic.
type FoodManager struct {
	grid     types.Grid
	foodList []types.Point
	rng      *rand.Rand
}

func NewFoodManager(grid types.Grid, initial []types.Point, seed uint64) *FoodManager {
	fm := &FoodManager{
		grid:     grid,
		foodList: make([]types.Point, 0, len(initial)),
		rng:      rand.New(rand.NewSource(seed)),
	}
	for _, f := range initial {
		fm.AddFood(f)
	}
	return fm
}

// GetFoodList returns a copy of the food cells in iteration order.
func (fm *FoodManager) GetFoodList() []types.Point {
	return slices.Clone(fm.foodList)
}

func (fm *FoodManager) Len() int {
	return len(fm.foodList)
}

func (fm *FoodManager) Contains(p types.Point) bool {
	return slices.Contains(fm.foodList, p)
}

// AddFood appends food unless it is already present or off the grid.
func (fm *FoodManager) AddFood(food types.Point) bool {
	if !fm.grid.Contains(food) || fm.Contains(food) {
		return false
	}
	fm.foodList = append(fm.foodList, food)
	return true
}

// RemoveFood deletes food, keeping the order of the rest.
func (fm *FoodManager) RemoveFood(food types.Point) bool {
	i := slices.Index(fm.foodList, food)
	if i < 0 {
		return false
	}
	fm.foodList = slices.Delete(fm.foodList, i, i+1)
	return true
}

// Replenish adds one random cell that is neither food nor occupied.
// It reports false when the board has no free cell left.
func (fm *FoodManager) Replenish(occupied func(types.Point) bool) (types.Point, bool) {
	empty := make([]types.Point, 0, fm.grid.Width*fm.grid.Height)
	for _, c := range fm.grid.Cells() {
		if fm.Contains(c) || (occupied != nil && occupied(c)) {
			continue
		}
		empty = append(empty, c)
	}
	if len(empty) == 0 {
		return types.Point{}, false
	}
	food := empty[fm.rng.Intn(len(empty))]
	fm.foodList = append(fm.foodList, food)
	return food, true
}
