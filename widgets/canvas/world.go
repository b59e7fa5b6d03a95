package canvas

// Hand-traced coastline point clouds in (longitude, latitude). The low set
// carries the recognizable continent outlines; the high set keeps every low
// point and fills the traces in with intermediate coordinates.

var worldLow = [][2]float64{
	// North America
	{-165, 60}, {-155, 58}, {-148, 60}, {-140, 59}, {-130, 54}, {-125, 48},
	{-124, 42}, {-120, 34}, {-114, 28}, {-110, 24}, {-105, 20}, {-97, 16},
	{-90, 15}, {-85, 12}, {-80, 9}, {-84, 22}, {-82, 28}, {-76, 35},
	{-70, 42}, {-65, 45}, {-60, 47}, {-55, 52}, {-65, 58}, {-80, 52},
	{-90, 58}, {-95, 62}, {-110, 68}, {-125, 70}, {-140, 70}, {-155, 71},
	// Greenland
	{-45, 61}, {-53, 67}, {-50, 72}, {-38, 76}, {-30, 70}, {-22, 70},
	// South America
	{-77, 4}, {-80, -5}, {-75, -15}, {-70, -20}, {-70, -33}, {-73, -45},
	{-70, -54}, {-65, -40}, {-58, -34}, {-48, -28}, {-40, -22}, {-35, -8},
	{-44, -3}, {-52, 5}, {-60, 9}, {-64, 10}, {-72, 12},
	// Europe
	{-9, 38}, {-9, 43}, {-2, 44}, {-4, 48}, {2, 51}, {5, 53}, {8, 55},
	{10, 59}, {5, 62}, {15, 68}, {25, 71}, {30, 60}, {22, 59}, {18, 55},
	{12, 45}, {16, 41}, {19, 40}, {23, 37},
	// British Isles and Iceland
	{-5, 50}, {-4, 53}, {-6, 56}, {-3, 58}, {0, 52}, {-10, 53},
	{-22, 64}, {-15, 65}, {-18, 66},
	// Africa
	{-6, 35}, {-10, 30}, {-16, 22}, {-17, 15}, {-15, 10}, {-8, 5}, {0, 6},
	{8, 4}, {9, -1}, {12, -6}, {13, -12}, {15, -22}, {18, -33}, {20, -34},
	{26, -34}, {32, -29}, {35, -24}, {40, -15}, {40, -10}, {43, 0},
	{48, 5}, {51, 11}, {43, 12}, {38, 18}, {35, 24}, {32, 30}, {20, 32},
	{10, 34}, {0, 36},
	// Madagascar
	{44, -25}, {47, -20}, {50, -16}, {48, -13}, {44, -17},
	// Asia
	{35, 36}, {30, 41}, {40, 43}, {50, 45}, {48, 28}, {52, 26}, {57, 25},
	{58, 22}, {67, 24}, {72, 20}, {73, 15}, {77, 8}, {80, 13}, {84, 18},
	{87, 21}, {91, 22}, {95, 16}, {98, 8}, {100, 3}, {104, 1}, {105, 10},
	{109, 12}, {107, 20}, {114, 22}, {120, 28}, {122, 31}, {120, 38},
	{126, 40}, {129, 36}, {126, 34}, {122, 40}, {132, 43}, {135, 45},
	{142, 53}, {156, 51}, {160, 56}, {162, 60}, {170, 62}, {178, 66},
	{170, 70}, {150, 72}, {130, 72}, {110, 76}, {90, 76}, {70, 73},
	{55, 70}, {40, 67}, {30, 70},
	// Japan
	{130, 32}, {134, 34}, {140, 36}, {141, 40}, {143, 43},
	// Maritime Southeast Asia and New Guinea
	{95, 5}, {100, 0}, {105, -6}, {110, -7}, {115, -8}, {120, -9},
	{125, -9}, {132, -2}, {137, -2}, {141, -3}, {145, -6}, {150, -9},
	// Australia
	{114, -22}, {114, -34}, {118, -35}, {124, -33}, {130, -32},
	{136, -35}, {140, -38}, {146, -39}, {150, -37}, {153, -30},
	{153, -25}, {146, -19}, {142, -11}, {136, -12}, {131, -12},
	{126, -14}, {122, -18},
	// New Zealand
	{173, -35}, {175, -37}, {174, -40}, {172, -43}, {167, -46},
}

// worldHighExtra holds the intermediate trace points that, together with
// worldLow, form the high resolution outline
var worldHighExtra = [][2]float64{
	// North America
	{-160, 59}, {-152, 59}, {-144, 60}, {-135, 57}, {-128, 51}, {-124, 45},
	{-122, 38}, {-117, 31}, {-112, 26}, {-107, 22}, {-101, 18}, {-94, 16},
	{-87, 13}, {-83, 10}, {-81, 8}, {-83, 17}, {-83, 25}, {-80, 26},
	{-79, 32}, {-73, 39}, {-67, 44}, {-62, 46}, {-57, 50}, {-60, 55},
	{-70, 60}, {-85, 55}, {-92, 60}, {-102, 65}, {-118, 69}, {-132, 70},
	{-148, 70}, {-160, 66},
	// Greenland
	{-49, 64}, {-52, 70}, {-44, 75}, {-33, 73}, {-25, 71},
	// South America
	{-79, 0}, {-78, -10}, {-72, -18}, {-70, -27}, {-71, -39}, {-72, -50},
	{-68, -52}, {-62, -39}, {-53, -31}, {-44, -25}, {-38, -15}, {-38, -5},
	{-48, 1}, {-56, 7}, {-62, 10}, {-68, 11}, {-75, 9},
	// Europe
	{-9, 40}, {-6, 44}, {0, 49}, {4, 52}, {7, 54}, {9, 57}, {8, 61},
	{10, 64}, {20, 70}, {28, 66}, {26, 60}, {20, 57}, {15, 50}, {14, 43},
	{17, 40}, {21, 38}, {25, 36}, {28, 37},
	// Africa
	{-8, 33}, {-13, 27}, {-17, 19}, {-16, 12}, {-11, 7}, {-4, 5}, {4, 6},
	{9, 2}, {11, -4}, {12, -9}, {14, -17}, {16, -28}, {19, -34},
	{23, -34}, {29, -32}, {33, -26}, {38, -18}, {40, -12}, {41, -5},
	{45, 2}, {50, 8}, {47, 11}, {40, 15}, {37, 21}, {34, 27}, {25, 31},
	{15, 33}, {5, 35},
	// Asia
	{32, 38}, {36, 41}, {44, 44}, {54, 46}, {50, 29}, {55, 26}, {60, 24},
	{64, 25}, {70, 22}, {72, 18}, {75, 11}, {79, 10}, {82, 16}, {86, 20},
	{89, 22}, {93, 19}, {97, 12}, {99, 6}, {102, 2}, {103, 5}, {106, 11},
	{108, 16}, {110, 21}, {117, 23}, {121, 30}, {121, 34}, {123, 39},
	{124, 39}, {128, 35}, {127, 42}, {134, 44}, {138, 48}, {141, 51},
	{150, 52}, {158, 53}, {161, 58}, {166, 61}, {174, 64}, {175, 68},
	{160, 71}, {140, 72}, {120, 74}, {100, 77}, {80, 73}, {60, 71},
	{48, 68}, {35, 68},
	// Japan
	{131, 33}, {136, 35}, {140, 38}, {142, 42},
	// Maritime Southeast Asia and New Guinea
	{97, 2}, {102, -4}, {107, -7}, {112, -7}, {117, -9}, {122, -9},
	{128, -3}, {134, -2}, {139, -4}, {143, -4}, {147, -7},
	// Australia
	{113, -25}, {115, -30}, {116, -35}, {121, -34}, {127, -32},
	{133, -32}, {138, -36}, {143, -39}, {148, -38}, {152, -33},
	{153, -27}, {149, -22}, {145, -15}, {140, -11}, {134, -12},
	{129, -13}, {124, -16}, {117, -21},
	// New Zealand
	{174, -36}, {175, -39}, {173, -42}, {170, -44}, {168, -45},
}

var worldHigh = append(append(make([][2]float64, 0, len(worldLow)+len(worldHighExtra)), worldLow...), worldHighExtra...)
