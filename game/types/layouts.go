package types

// FoodLayouts holds the scripted food cells for each run, in iteration order.
// Run N (1-based) uses FoodLayouts[N-1].
var FoodLayouts = [][]Point{
	{
		{3, 3}, {6, 10}, {20, 5}, {15, 22}, {8, 27},
		{30, 20}, {25, 15}, {19, 9}, {12, 19}, {5, 25},
		{10, 6}, {24, 28}, {18, 13}, {7, 29}, {21, 16},
		{26, 4}, {9, 14}, {13, 30}, {4, 22}, {31, 11},
	},
	{
		{4, 5}, {7, 12}, {21, 6}, {16, 23}, {9, 28},
		{31, 21}, {26, 16}, {20, 10}, {13, 20}, {6, 26},
		{11, 7}, {25, 29}, {19, 14}, {8, 30}, {22, 17},
		{27, 5}, {10, 15}, {14, 31}, {5, 23}, {32, 12},
	},
	{
		{5, 7}, {8, 14}, {22, 8}, {17, 25}, {10, 30},
		{32, 23}, {27, 18}, {21, 12}, {14, 22}, {7, 28},
		{12, 9}, {26, 31}, {20, 16}, {9, 32}, {23, 19},
		{28, 7}, {11, 17}, {15, 33}, {6, 25}, {33, 14},
	},
	{
		{6, 9}, {9, 16}, {23, 10}, {18, 27}, {11, 32},
		{33, 24}, {28, 19}, {22, 13}, {15, 23}, {8, 29},
		{13, 10}, {27, 32}, {21, 17}, {10, 33}, {24, 20},
		{29, 8}, {12, 18}, {16, 34}, {7, 26}, {34, 15},
	},
	{
		{7, 11}, {10, 18}, {24, 11}, {19, 28}, {12, 33},
		{34, 25}, {29, 20}, {23, 14}, {16, 24}, {9, 30},
		{14, 11}, {28, 33}, {22, 18}, {11, 34}, {25, 21},
		{30, 9}, {13, 19}, {17, 34}, {8, 27}, {34, 16},
	},
}

// FoodLayout returns the layout for a 1-based run number, cycling when run
// exceeds the number of scripted layouts.
func FoodLayout(run int) []Point {
	if run < 1 {
		run = 1
	}
	src := FoodLayouts[(run-1)%len(FoodLayouts)]
	out := make([]Point, len(src))
	copy(out, src)
	return out
}
