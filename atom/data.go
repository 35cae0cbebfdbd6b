// Copyright 2016 The Goupil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package atom

// elements holds the data of all tabulated elements, indexed by Z-1.
// Mean atomic masses follow the standard atomic weights; for elements with no
// stable isotope, the mass of the most long-lived isotope is used
var elements = [MaxZ]Element{
	{1, 1.008, "Hydrogen", "H"},
	{2, 4.0026, "Helium", "He"},
	{3, 6.94, "Lithium", "Li"},
	{4, 9.0122, "Beryllium", "Be"},
	{5, 10.81, "Boron", "B"},
	{6, 12.011, "Carbon", "C"},
	{7, 14.007, "Nitrogen", "N"},
	{8, 15.999, "Oxygen", "O"},
	{9, 18.998, "Fluorine", "F"},
	{10, 20.180, "Neon", "Ne"},
	{11, 22.990, "Sodium", "Na"},
	{12, 24.305, "Magnesium", "Mg"},
	{13, 26.982, "Aluminium", "Al"},
	{14, 28.085, "Silicon", "Si"},
	{15, 30.974, "Phosphorus", "P"},
	{16, 32.06, "Sulfur", "S"},
	{17, 35.45, "Chlorine", "Cl"},
	{18, 39.948, "Argon", "Ar"},
	{19, 39.098, "Potassium", "K"},
	{20, 40.078, "Calcium", "Ca"},
	{21, 44.956, "Scandium", "Sc"},
	{22, 47.867, "Titanium", "Ti"},
	{23, 50.942, "Vanadium", "V"},
	{24, 51.996, "Chromium", "Cr"},
	{25, 54.938, "Manganese", "Mn"},
	{26, 55.845, "Iron", "Fe"},
	{27, 58.933, "Cobalt", "Co"},
	{28, 58.693, "Nickel", "Ni"},
	{29, 63.546, "Copper", "Cu"},
	{30, 65.38, "Zinc", "Zn"},
	{31, 69.723, "Gallium", "Ga"},
	{32, 72.630, "Germanium", "Ge"},
	{33, 74.922, "Arsenic", "As"},
	{34, 78.971, "Selenium", "Se"},
	{35, 79.904, "Bromine", "Br"},
	{36, 83.798, "Krypton", "Kr"},
	{37, 85.468, "Rubidium", "Rb"},
	{38, 87.62, "Strontium", "Sr"},
	{39, 88.906, "Yttrium", "Y"},
	{40, 91.224, "Zirconium", "Zr"},
	{41, 92.906, "Niobium", "Nb"},
	{42, 95.95, "Molybdenum", "Mo"},
	{43, 97.907, "Technetium", "Tc"},
	{44, 101.07, "Ruthenium", "Ru"},
	{45, 102.91, "Rhodium", "Rh"},
	{46, 106.42, "Palladium", "Pd"},
	{47, 107.87, "Silver", "Ag"},
	{48, 112.41, "Cadmium", "Cd"},
	{49, 114.82, "Indium", "In"},
	{50, 118.71, "Tin", "Sn"},
	{51, 121.76, "Antimony", "Sb"},
	{52, 127.60, "Tellurium", "Te"},
	{53, 126.90, "Iodine", "I"},
	{54, 131.29, "Xenon", "Xe"},
	{55, 132.91, "Caesium", "Cs"},
	{56, 137.33, "Barium", "Ba"},
	{57, 138.91, "Lanthanum", "La"},
	{58, 140.12, "Cerium", "Ce"},
	{59, 140.91, "Praseodymium", "Pr"},
	{60, 144.24, "Neodymium", "Nd"},
	{61, 144.91, "Promethium", "Pm"},
	{62, 150.36, "Samarium", "Sm"},
	{63, 151.96, "Europium", "Eu"},
	{64, 157.25, "Gadolinium", "Gd"},
	{65, 158.93, "Terbium", "Tb"},
	{66, 162.50, "Dysprosium", "Dy"},
	{67, 164.93, "Holmium", "Ho"},
	{68, 167.26, "Erbium", "Er"},
	{69, 168.93, "Thulium", "Tm"},
	{70, 173.05, "Ytterbium", "Yb"},
	{71, 174.97, "Lutetium", "Lu"},
	{72, 178.49, "Hafnium", "Hf"},
	{73, 180.95, "Tantalum", "Ta"},
	{74, 183.84, "Tungsten", "W"},
	{75, 186.21, "Rhenium", "Re"},
	{76, 190.23, "Osmium", "Os"},
	{77, 192.22, "Iridium", "Ir"},
	{78, 195.08, "Platinum", "Pt"},
	{79, 196.97, "Gold", "Au"},
	{80, 200.59, "Mercury", "Hg"},
	{81, 204.38, "Thallium", "Tl"},
	{82, 207.2, "Lead", "Pb"},
	{83, 208.98, "Bismuth", "Bi"},
	{84, 208.98, "Polonium", "Po"},
	{85, 209.99, "Astatine", "At"},
	{86, 222.02, "Radon", "Rn"},
	{87, 223.02, "Francium", "Fr"},
	{88, 226.03, "Radium", "Ra"},
	{89, 227.03, "Actinium", "Ac"},
	{90, 232.04, "Thorium", "Th"},
	{91, 231.04, "Protactinium", "Pa"},
	{92, 238.03, "Uranium", "U"},
	{93, 237.05, "Neptunium", "Np"},
	{94, 244.06, "Plutonium", "Pu"},
	{95, 243.06, "Americium", "Am"},
	{96, 247.07, "Curium", "Cm"},
	{97, 247.07, "Berkelium", "Bk"},
	{98, 251.08, "Californium", "Cf"},
	{99, 252.08, "Einsteinium", "Es"},
	{100, 257.10, "Fermium", "Fm"},
	{101, 258.10, "Mendelevium", "Md"},
	{102, 259.10, "Nobelium", "No"},
	{103, 262.11, "Lawrencium", "Lr"},
	{104, 267.12, "Rutherfordium", "Rf"},
	{105, 268.13, "Dubnium", "Db"},
	{106, 271.13, "Seaborgium", "Sg"},
	{107, 272.14, "Bohrium", "Bh"},
	{108, 270.13, "Hassium", "Hs"},
	{109, 276.15, "Meitnerium", "Mt"},
	{110, 281.16, "Darmstadtium", "Ds"},
	{111, 280.16, "Roentgenium", "Rg"},
	{112, 285.18, "Copernicium", "Cn"},
	{113, 284.18, "Nihonium", "Nh"},
	{114, 289.19, "Flerovium", "Fl"},
	{115, 288.19, "Moscovium", "Mc"},
	{116, 293.20, "Livermorium", "Lv"},
	{117, 294.21, "Tennessine", "Ts"},
	{118, 294.21, "Oganesson", "Og"},
}
