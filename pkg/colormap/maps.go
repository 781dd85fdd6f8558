package colormap

import "image/color"

// Perceptually uniform maps (matplotlib stop tables).

// Viridis colormap.
var Viridis = NewLinear("viridis", []color.RGBA{
	{68, 1, 84, 255},
	{72, 35, 116, 255},
	{64, 67, 135, 255},
	{52, 94, 141, 255},
	{41, 120, 142, 255},
	{32, 144, 140, 255},
	{34, 167, 132, 255},
	{68, 190, 112, 255},
	{121, 209, 81, 255},
	{189, 222, 38, 255},
	{253, 231, 37, 255},
})

// Plasma colormap.
var Plasma = NewLinear("plasma", []color.RGBA{
	{13, 8, 135, 255},
	{75, 3, 161, 255},
	{125, 3, 168, 255},
	{168, 34, 150, 255},
	{203, 70, 121, 255},
	{229, 107, 93, 255},
	{248, 148, 65, 255},
	{253, 195, 40, 255},
	{240, 249, 33, 255},
})

// Inferno colormap.
var Inferno = NewLinear("inferno", []color.RGBA{
	{0, 0, 4, 255},
	{40, 11, 84, 255},
	{101, 21, 110, 255},
	{159, 42, 99, 255},
	{212, 72, 66, 255},
	{245, 125, 21, 255},
	{250, 193, 39, 255},
	{252, 255, 164, 255},
})

// Magma colormap.
var Magma = NewLinear("magma", []color.RGBA{
	{0, 0, 4, 255},
	{28, 16, 68, 255},
	{79, 18, 123, 255},
	{129, 37, 129, 255},
	{181, 54, 122, 255},
	{229, 80, 100, 255},
	{251, 135, 97, 255},
	{254, 194, 135, 255},
	{252, 253, 191, 255},
})

// Sequential ColorBrewer maps. These run light to dark, so cycles
// built from them normally narrow the sampling window to keep the
// light end readable on a white background.

// YlOrBr colormap (yellow-orange-brown).
var YlOrBr = NewLinearHex("YlOrBr",
	"#ffffe5", "#fff7bc", "#fee391", "#fec44f", "#fe9929",
	"#ec7014", "#cc4c02", "#993404", "#662506")

// YlGnBu colormap (yellow-green-blue).
var YlGnBu = NewLinearHex("YlGnBu",
	"#ffffd9", "#edf8b1", "#c7e9b4", "#7fcdbb", "#41b6c4",
	"#1d91c0", "#225ea8", "#253494", "#081d58")

// Blues colormap.
var Blues = NewLinearHex("Blues",
	"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
	"#4292c6", "#2171b5", "#08519c", "#08306b")

// Greens colormap.
var Greens = NewLinearHex("Greens",
	"#f7fcf5", "#e5f5e0", "#c7e9c0", "#a1d99b", "#74c476",
	"#41ab5d", "#238b45", "#006d2c", "#00441b")

// Greys colormap.
var Greys = NewLinearHex("Greys",
	"#ffffff", "#f0f0f0", "#d9d9d9", "#bdbdbd", "#969696",
	"#737373", "#525252", "#252525", "#000000")

// Oranges colormap.
var Oranges = NewLinearHex("Oranges",
	"#fff5eb", "#fee6ce", "#fdd0a2", "#fdae6b", "#fd8d3c",
	"#f16913", "#d94801", "#a63603", "#7f2704")

// Copper colormap (black to copper).
var Copper = NewLinear("copper", []color.RGBA{
	{0, 0, 0, 255},
	{255, 159, 101, 255},
	{255, 199, 127, 255},
})

// Autumn colormap (red to yellow).
var Autumn = NewLinear("autumn", []color.RGBA{
	{255, 0, 0, 255},
	{255, 255, 0, 255},
})

// Tab20 categorical palette with 20 distinct colors.
var Tab20 = NewCategorical("categorical", []color.RGBA{
	{31, 119, 180, 255},  // Blue
	{255, 127, 14, 255},  // Orange
	{44, 160, 44, 255},   // Green
	{214, 39, 40, 255},   // Red
	{148, 103, 189, 255}, // Purple
	{140, 86, 75, 255},   // Brown
	{227, 119, 194, 255}, // Pink
	{127, 127, 127, 255}, // Gray
	{188, 189, 34, 255},  // Olive
	{23, 190, 207, 255},  // Cyan
	{174, 199, 232, 255}, // Light blue
	{255, 187, 120, 255}, // Light orange
	{152, 223, 138, 255}, // Light green
	{255, 152, 150, 255}, // Light red
	{197, 176, 213, 255}, // Light purple
	{196, 156, 148, 255}, // Light brown
	{247, 182, 210, 255}, // Light pink
	{199, 199, 199, 255}, // Light gray
	{219, 219, 141, 255}, // Light olive
	{158, 218, 229, 255}, // Light cyan
})
