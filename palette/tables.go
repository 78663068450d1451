package palette

import "github.com/esimov/needlework"

func brother(color uint32, desc, catalog string) needlework.Thread {
	return needlework.Thread{Color: color, Description: desc, Brand: "Brother", CatalogNumber: catalog, Chart: "Brother"}
}

func janome(color uint32, desc, catalog string) needlework.Thread {
	return needlework.Thread{Color: color, Description: desc, Brand: "Janome", CatalogNumber: catalog, Chart: "Janome"}
}

// pecThreads is the fixed Brother PEC thread table. Slot 0 stands for an unknown thread.
var pecThreads = Palette{
	brother(0x000000, "Unknown", "0"),
	brother(0x0E1F7C, "Prussian Blue", "1"),
	brother(0x0A55A3, "Blue", "2"),
	brother(0x008777, "Teal Green", "3"),
	brother(0x4B6BAF, "Cornflower Blue", "4"),
	brother(0xED171F, "Red", "5"),
	brother(0xD15C00, "Reddish Brown", "6"),
	brother(0x913697, "Magenta", "7"),
	brother(0xE49ACB, "Light Lilac", "8"),
	brother(0x915FAC, "Lilac", "9"),
	brother(0x9ED67D, "Mint Green", "10"),
	brother(0xE8A900, "Deep Gold", "11"),
	brother(0xFEBA35, "Orange", "12"),
	brother(0xFFFF00, "Yellow", "13"),
	brother(0x70BC1F, "Lime Green", "14"),
	brother(0xBA9800, "Brass", "15"),
	brother(0xA8A8A8, "Silver", "16"),
	brother(0x7D6F00, "Russet Brown", "17"),
	brother(0xFFFFB3, "Cream Brown", "18"),
	brother(0x4F5556, "Pewter", "19"),
	brother(0x000000, "Black", "20"),
	brother(0x0B3D91, "Ultramarine", "21"),
	brother(0x770176, "Royal Purple", "22"),
	brother(0x293133, "Dark Gray", "23"),
	brother(0x2A1301, "Dark Brown", "24"),
	brother(0xF64A8A, "Deep Rose", "25"),
	brother(0xB27624, "Light Brown", "26"),
	brother(0xFCBBC5, "Salmon Pink", "27"),
	brother(0xFE370F, "Vermillion", "28"),
	brother(0xF0F0F0, "White", "29"),
	brother(0x6A1C8A, "Violet", "30"),
	brother(0xA8DDC4, "Seacrest", "31"),
	brother(0x2584BB, "Sky Blue", "32"),
	brother(0xFEB343, "Pumpkin", "33"),
	brother(0xFFF36B, "Cream Yellow", "34"),
	brother(0xD0A660, "Khaki", "35"),
	brother(0xD15400, "Clay Brown", "36"),
	brother(0x66BA49, "Leaf Green", "37"),
	brother(0x134A46, "Peacock Blue", "38"),
	brother(0x878787, "Gray", "39"),
	brother(0xD8CCC6, "Warm Gray", "40"),
	brother(0x435607, "Dark Olive", "41"),
	brother(0xFDD9DE, "Flesh Pink", "42"),
	brother(0xF993BC, "Pink", "43"),
	brother(0x003822, "Deep Green", "44"),
	brother(0xB2AFD4, "Lavender", "45"),
	brother(0x686AB0, "Wisteria Violet", "46"),
	brother(0xEFE3B9, "Beige", "47"),
	brother(0xF73866, "Carmine", "48"),
	brother(0xB54B64, "Amber Red", "49"),
	brother(0x132B1A, "Olive Green", "50"),
	brother(0xC70156, "Dark Fuchsia", "51"),
	brother(0xFE9E32, "Tangerine", "52"),
	brother(0xA8DEEB, "Light Blue", "53"),
	brother(0x00673E, "Emerald Green", "54"),
	brother(0x4E2990, "Purple", "55"),
	brother(0x2F7E20, "Moss Green", "56"),
	brother(0xFFCCCC, "Flesh Pink", "57"),
	brother(0xFFD911, "Harvest Gold", "58"),
	brother(0x095BA6, "Electric Blue", "59"),
	brother(0xF0F970, "Lemon Yellow", "60"),
	brother(0xE3F35B, "Fresh Green", "61"),
	brother(0xFF9900, "Applique Material", "62"),
	brother(0xFFF08D, "Applique Position", "63"),
	brother(0xFFC8C8, "Applique", "64"),
}

// jefThreads is the fixed Janome JEF thread table. Slot 0 is reserved and never assigned.
var jefThreads = Palette{
	{Description: "Placeholder"},
	janome(0x000000, "Black", "002"),
	janome(0xFFFFFF, "White", "001"),
	janome(0xFFFF17, "Yellow", "204"),
	janome(0xFF6600, "Orange", "203"),
	janome(0x2F5933, "Olive Green", "219"),
	janome(0x237336, "Green", "226"),
	janome(0x65C2C8, "Sky", "217"),
	janome(0xAB5A96, "Purple", "208"),
	janome(0xF669A0, "Pink", "201"),
	janome(0xFF0000, "Red", "225"),
	janome(0xB1704E, "Brown", "214"),
	janome(0x0B2F84, "Blue", "207"),
	janome(0xE4C35D, "Gold", "003"),
	janome(0x481A05, "Dark Brown", "205"),
	janome(0xAC9CC7, "Pale Violet", "209"),
	janome(0xFCF294, "Pale Yellow", "210"),
	janome(0xF999B7, "Pale Pink", "211"),
	janome(0xFAB381, "Peach", "212"),
	janome(0xC9A480, "Beige", "213"),
	janome(0x970533, "Wine Red", "215"),
	janome(0xA0B8CC, "Pale Sky", "216"),
	janome(0x7FC21C, "Yellow Green", "218"),
	janome(0xE5E5E5, "Silver Gray", "220"),
	janome(0x889B9B, "Gray", "221"),
	janome(0x98D6BD, "Pale Aqua", "227"),
	janome(0xB2E1E3, "Baby Blue", "228"),
	janome(0x368BA0, "Powder Blue", "229"),
	janome(0x4F83AB, "Bright Blue", "230"),
	janome(0x386A91, "Slate Blue", "231"),
	janome(0x071650, "Navy Blue", "232"),
	janome(0xF999A2, "Salmon Pink", "233"),
	janome(0xF9676B, "Coral", "234"),
	janome(0xE3311F, "Burnt Orange", "235"),
	janome(0xE2A188, "Cinnamon", "236"),
	janome(0xB59474, "Umber", "237"),
	janome(0xE4CF99, "Blond", "238"),
	janome(0xFFCB00, "Sunflower", "239"),
	janome(0xE1ADD4, "Orchid Pink", "240"),
	janome(0xC3007E, "Peony Purple", "241"),
	janome(0x80004B, "Burgundy", "242"),
	janome(0x540571, "Royal Purple", "243"),
	janome(0xB10525, "Cardinal Red", "244"),
	janome(0xCAE0C0, "Opal Green", "245"),
	janome(0x899856, "Moss Green", "246"),
	janome(0x5C941A, "Meadow Green", "247"),
	janome(0x003114, "Dark Green", "248"),
	janome(0x5DAE94, "Aquamarine", "249"),
	janome(0x4CBF8F, "Emerald Green", "250"),
	janome(0x007772, "Peacock Green", "251"),
	janome(0x595B61, "Dark Gray", "252"),
	janome(0xFFFFF2, "Ivory White", "253"),
	janome(0xB15818, "Hazel", "254"),
	janome(0xCB8A07, "Toast", "255"),
	janome(0x986C80, "Salmon", "256"),
	janome(0x98692D, "Cocoa Brown", "257"),
	janome(0x4D3419, "Sienna", "258"),
	janome(0x4C330B, "Sepia", "259"),
	janome(0x33200A, "Dark Sepia", "260"),
	janome(0x523A97, "Violet Blue", "261"),
	janome(0x0D217E, "Blue Ink", "262"),
	janome(0x1E77AC, "Sola Blue", "263"),
	janome(0xB2DD53, "Green Dust", "264"),
	janome(0xF33689, "Crimson", "265"),
	janome(0xDE649E, "Floral Pink", "266"),
	janome(0x984161, "Wine", "267"),
	janome(0x4C5612, "Olive Drab", "268"),
	janome(0x4C881F, "Meadow", "269"),
	janome(0xE4DE79, "Mustard", "270"),
	janome(0xCB8A1A, "Yellow Ochre", "271"),
	janome(0xCBA21C, "Old Gold", "272"),
	janome(0xFF9805, "Honey Dew", "273"),
	janome(0xFCB257, "Tangerine", "274"),
	janome(0xFFE505, "Canary Yellow", "275"),
	janome(0xF0331F, "Vermilion", "202"),
	janome(0x1A842D, "Bright Green", "206"),
	janome(0x386CAE, "Ocean Blue", "222"),
	janome(0xE3C4B4, "Beige Gray", "223"),
	janome(0xE3AC81, "Bamboo", "224"),
}
