// Package dex holds the static Pokémon and item lookup tables plus the
// name normalizer used by every extractor. The tables are immutable
// package-level data loaded once at startup; nothing here mutates.
package dex

import "strings"

// Entry describes one canonical Pokémon: its national dex number and the
// sprite slug used by the frontend sprite sheets.
type Entry struct {
	Dex    int
	Sprite string
}

// Pokedex maps canonical species names (as they appear in team exports) to
// their entries. Regional and battle formes get their own keys; the
// normalizer handles the Incarnate/Therian suffix variants.
var Pokedex = map[string]Entry{
	// Restricted legendaries
	"Mewtwo":          {150, "mewtwo"},
	"Lugia":           {249, "lugia"},
	"Ho-Oh":           {250, "ho-oh"},
	"Kyogre":          {382, "kyogre"},
	"Groudon":         {383, "groudon"},
	"Rayquaza":        {384, "rayquaza"},
	"Dialga":          {483, "dialga"},
	"Dialga-Origin":   {483, "dialga-origin"},
	"Palkia":          {484, "palkia"},
	"Palkia-Origin":   {484, "palkia-origin"},
	"Giratina":        {487, "giratina"},
	"Giratina-Origin": {487, "giratina-origin"},
	"Reshiram":        {643, "reshiram"},
	"Zekrom":          {644, "zekrom"},
	"Kyurem":          {646, "kyurem"},
	"Kyurem-White":    {646, "kyurem-white"},
	"Kyurem-Black":    {646, "kyurem-black"},
	"Xerneas":         {716, "xerneas"},
	"Yveltal":         {717, "yveltal"},
	"Zygarde":         {718, "zygarde"},
	"Solgaleo":        {791, "solgaleo"},
	"Lunala":          {792, "lunala"},
	"Necrozma":            {800, "necrozma"},
	"Necrozma-Dusk-Mane":  {800, "necrozma-duskmane"},
	"Necrozma-Dawn-Wings": {800, "necrozma-dawnwings"},
	"Zacian":               {888, "zacian"},
	"Zacian-Crowned":       {888, "zacian-crowned"},
	"Zamazenta":            {889, "zamazenta"},
	"Zamazenta-Crowned":    {889, "zamazenta-crowned"},
	"Eternatus":            {890, "eternatus"},
	"Calyrex":              {898, "calyrex"},
	"Calyrex-Ice":          {898, "calyrex-ice"},
	"Calyrex-Shadow":       {898, "calyrex-shadow"},
	"Koraidon":             {1007, "koraidon"},
	"Miraidon":             {1008, "miraidon"},
	"Terapagos":            {1024, "terapagos"},

	// Genies (Incarnate is the default forme)
	"Tornadus-Incarnate": {641, "tornadus"},
	"Tornadus-Therian":   {641, "tornadus-therian"},
	"Thundurus-Incarnate": {642, "thundurus"},
	"Thundurus-Therian":   {642, "thundurus-therian"},
	"Landorus-Incarnate":  {645, "landorus"},
	"Landorus-Therian":    {645, "landorus-therian"},
	"Enamorus-Incarnate":  {905, "enamorus"},
	"Enamorus-Therian":    {905, "enamorus-therian"},

	// Urshifu and friends
	"Urshifu":              {892, "urshifu"},
	"Urshifu-Rapid-Strike": {892, "urshifu-rapidstrike"},
	"Kubfu":                {891, "kubfu"},
	"Glastrier":            {896, "glastrier"},
	"Spectrier":            {897, "spectrier"},
	"Regieleki":            {894, "regieleki"},
	"Regidrago":            {895, "regidrago"},

	// Treasures of Ruin
	"Wo-Chien": {1001, "wochien"},
	"Chien-Pao": {1002, "chienpao"},
	"Ting-Lu":   {1003, "tinglu"},
	"Chi-Yu":    {1004, "chiyu"},

	// Paradox Pokémon
	"Great Tusk":    {984, "greattusk"},
	"Scream Tail":   {985, "screamtail"},
	"Brute Bonnet":  {986, "brutebonnet"},
	"Flutter Mane":  {987, "fluttermane"},
	"Slither Wing":  {988, "slitherwing"},
	"Sandy Shocks":  {989, "sandyshocks"},
	"Iron Treads":   {990, "irontreads"},
	"Iron Bundle":   {991, "ironbundle"},
	"Iron Hands":    {992, "ironhands"},
	"Iron Jugulis":  {993, "ironjugulis"},
	"Iron Moth":     {994, "ironmoth"},
	"Iron Thorns":   {995, "ironthorns"},
	"Roaring Moon":  {1005, "roaringmoon"},
	"Iron Valiant":  {1006, "ironvaliant"},
	"Walking Wake":  {1009, "walkingwake"},
	"Iron Leaves":   {1010, "ironleaves"},
	"Gouging Fire":  {1020, "gougingfire"},
	"Raging Bolt":   {1021, "ragingbolt"},
	"Iron Boulder":  {1022, "ironboulder"},
	"Iron Crown":    {1023, "ironcrown"},

	// Common VGC picks, alphabetical-ish by generation
	"Venusaur":   {3, "venusaur"},
	"Charizard":  {6, "charizard"},
	"Ninetales":  {38, "ninetales"},
	"Ninetales-Alola": {38, "ninetales-alola"},
	"Dugtrio":    {51, "dugtrio"},
	"Gengar":     {94, "gengar"},
	"Rhydon":     {112, "rhydon"},
	"Gyarados":   {130, "gyarados"},
	"Ditto":      {132, "ditto"},
	"Snorlax":    {143, "snorlax"},
	"Dragonite":  {149, "dragonite"},
	"Politoed":   {186, "politoed"},
	"Scizor":     {212, "scizor"},
	"Heracross":  {214, "heracross"},
	"Kingdra":    {230, "kingdra"},
	"Tyranitar":  {248, "tyranitar"},
	"Gardevoir":  {282, "gardevoir"},
	"Pelipper":   {279, "pelipper"},
	"Torkoal":    {324, "torkoal"},
	"Whimsicott": {547, "whimsicott"},
	"Salamence":  {373, "salamence"},
	"Metagross":  {376, "metagross"},
	"Regirock":   {377, "regirock"},
	"Regice":     {378, "regice"},
	"Registeel":  {379, "registeel"},
	"Garchomp":   {445, "garchomp"},
	"Lucario":    {448, "lucario"},
	"Abomasnow":  {460, "abomasnow"},
	"Weavile":    {461, "weavile"},
	"Magnezone":  {462, "magnezone"},
	"Togekiss":   {468, "togekiss"},
	"Gliscor":    {472, "gliscor"},
	"Gallade":    {475, "gallade"},
	"Rotom-Heat": {479, "rotom-heat"},
	"Rotom-Wash": {479, "rotom-wash"},
	"Cresselia":  {488, "cresselia"},
	"Serperior":  {497, "serperior"},
	"Excadrill":  {530, "excadrill"},
	"Conkeldurr": {534, "conkeldurr"},
	"Amoonguss":  {591, "amoonguss"},
	"Chandelure": {609, "chandelure"},
	"Haxorus":    {612, "haxorus"},
	"Mienshao":   {620, "mienshao"},
	"Golurk":     {623, "golurk"},
	"Braviary":   {628, "braviary"},
	"Hydreigon":  {635, "hydreigon"},
	"Volcarona":  {637, "volcarona"},
	"Talonflame": {663, "talonflame"},
	"Aegislash":  {681, "aegislash"},
	"Sylveon":    {700, "sylveon"},
	"Goodra":     {706, "goodra"},
	"Gourgeist":  {711, "gourgeist"},
	"Incineroar": {727, "incineroar"},
	"Primarina":  {730, "primarina"},
	"Lycanroc":   {745, "lycanroc"},
	"Toxapex":    {748, "toxapex"},
	"Araquanid":  {752, "araquanid"},
	"Salazzle":   {758, "salazzle"},
	"Tsareena":   {763, "tsareena"},
	"Oranguru":   {765, "oranguru"},
	"Passimian":  {766, "passimian"},
	"Golisopod":  {768, "golisopod"},
	"Mimikyu":    {778, "mimikyu"},
	"Kommo-o":    {784, "kommo-o"},
	"Tapu Koko":  {785, "tapukoko"},
	"Tapu Lele":  {786, "tapulele"},
	"Tapu Bulu":  {787, "tapubulu"},
	"Tapu Fini":  {788, "tapufini"},
	"Nihilego":   {793, "nihilego"},
	"Buzzwole":   {794, "buzzwole"},
	"Pheromosa":  {795, "pheromosa"},
	"Xurkitree":  {796, "xurkitree"},
	"Celesteela": {797, "celesteela"},
	"Kartana":    {798, "kartana"},
	"Guzzlord":   {799, "guzzlord"},
	"Stakataka":  {805, "stakataka"},
	"Rillaboom":  {812, "rillaboom"},
	"Cinderace":  {815, "cinderace"},
	"Inteleon":   {818, "inteleon"},
	"Corviknight": {823, "corviknight"},
	"Dubwool":    {832, "dubwool"},
	"Coalossal":  {839, "coalossal"},
	"Flapple":    {841, "flapple"},
	"Appletun":   {842, "appletun"},
	"Sandaconda": {844, "sandaconda"},
	"Barraskewda": {847, "barraskewda"},
	"Toxtricity": {849, "toxtricity"},
	"Centiskorch": {851, "centiskorch"},
	"Hatterene":  {858, "hatterene"},
	"Grimmsnarl": {861, "grimmsnarl"},
	"Obstagoon":  {862, "obstagoon"},
	"Sirfetch'd": {865, "sirfetchd"},
	"Alcremie":   {869, "alcremie"},
	"Falinks":    {870, "falinks"},
	"Pincurchin": {871, "pincurchin"},
	"Frosmoth":   {873, "frosmoth"},
	"Indeedee":   {876, "indeedee"},
	"Indeedee-F": {876, "indeedee-f"},
	"Dracozolt":  {880, "dracozolt"},
	"Arctozolt":  {881, "arctozolt"},
	"Dragapult":  {887, "dragapult"},
	"Basculegion": {902, "basculegion"},
	"Sneasler":   {903, "sneasler"},
	"Overqwil":   {904, "overqwil"},
	"Ursaluna":   {901, "ursaluna"},
	"Ursaluna-Bloodmoon": {901, "ursaluna-bloodmoon"},
	"Meowscarada": {908, "meowscarada"},
	"Skeledirge": {911, "skeledirge"},
	"Quaquaval":  {914, "quaquaval"},
	"Pawmot":     {923, "pawmot"},
	"Maushold":   {925, "maushold"},
	"Dachsbun":   {927, "dachsbun"},
	"Arboliva":   {930, "arboliva"},
	"Garganacl":  {934, "garganacl"},
	"Armarouge":  {936, "armarouge"},
	"Ceruledge":  {937, "ceruledge"},
	"Kilowattrel": {941, "kilowattrel"},
	"Palafin":    {964, "palafin"},
	"Revavroom":  {966, "revavroom"},
	"Cyclizar":   {967, "cyclizar"},
	"Orthworm":   {968, "orthworm"},
	"Glimmora":   {970, "glimmora"},
	"Houndstone": {972, "houndstone"},
	"Flamigo":    {973, "flamigo"},
	"Cetitan":    {975, "cetitan"},
	"Dondozo":    {977, "dondozo"},
	"Tatsugiri":  {978, "tatsugiri"},
	"Annihilape": {979, "annihilape"},
	"Clodsire":   {980, "clodsire"},
	"Farigiraf":  {981, "farigiraf"},
	"Dudunsparce": {982, "dudunsparce"},
	"Kingambit":  {983, "kingambit"},
	"Gholdengo":  {1000, "gholdengo"},
	"Baxcalibur": {998, "baxcalibur"},
	"Tinkaton":   {959, "tinkaton"},
	"Grafaiai":   {945, "grafaiai"},
	"Brambleghast": {947, "brambleghast"},
	"Toedscruel": {949, "toedscruel"},
	"Klawf":      {950, "klawf"},
	"Scovillain": {952, "scovillain"},
	"Espathra":   {956, "espathra"},
	"Wugtrio":    {961, "wugtrio"},
	"Bombirdier": {962, "bombirdier"},
	"Ogerpon":             {1017, "ogerpon"},
	"Ogerpon-Wellspring":  {1017, "ogerpon-wellspring"},
	"Ogerpon-Hearthflame": {1017, "ogerpon-hearthflame"},
	"Ogerpon-Cornerstone": {1017, "ogerpon-cornerstone"},
	"Okidogi":    {1014, "okidogi"},
	"Munkidori":  {1015, "munkidori"},
	"Fezandipiti": {1016, "fezandipiti"},
	"Archaludon": {1018, "archaludon"},
	"Hydrapple":  {1019, "hydrapple"},
	"Pecharunt":  {1025, "pecharunt"},
	"Sinistcha":  {1013, "sinistcha"},
	"Dipplin":    {1011, "dipplin"},
	"Arcanine":   {59, "arcanine"},
	"Arcanine-Hisui": {59, "arcanine-hisui"},
	"Raichu":     {26, "raichu"},
	"Clefairy":   {35, "clefairy"},
	"Grimer-Alola": {88, "grimer-alola"},
	"Muk-Alola":  {89, "muk-alola"},
	"Porygon2":   {233, "porygon2"},
	"Blissey":    {242, "blissey"},
	"Dusclops":   {356, "dusclops"},
	"Gastrodon":  {423, "gastrodon"},
	"Bronzong":   {437, "bronzong"},
	"Smeargle":   {235, "smeargle"},
	"Swampert":   {260, "swampert"},
	"Gothitelle": {576, "gothitelle"},
	"Ferrothorn": {598, "ferrothorn"},
	"Jellicent":  {593, "jellicent"},
	"Murkrow":    {198, "murkrow"},
	"Volbeat":    {313, "volbeat"},
	"Illumise":   {314, "illumise"},
	"Pachirisu":  {417, "pachirisu"},
}

// Items maps held-item names to their sprite slugs. Lookup here is exact
// or case-insensitive only; items have no forme variants.
var Items = map[string]string{
	"Life Orb":          "lifeorb",
	"Choice Band":       "choiceband",
	"Choice Specs":      "choicespecs",
	"Choice Scarf":      "choicescarf",
	"Focus Sash":        "focussash",
	"Leftovers":         "leftovers",
	"Sitrus Berry":      "sitrusberry",
	"Figy Berry":        "figyberry",
	"Lum Berry":         "lumberry",
	"Safety Goggles":    "safetygoggles",
	"Assault Vest":      "assaultvest",
	"Rocky Helmet":      "rockyhelmet",
	"Mental Herb":       "mentalherb",
	"Power Herb":        "powerherb",
	"White Herb":        "whiteherb",
	"Eject Button":      "ejectbutton",
	"Eject Pack":        "ejectpack",
	"Weakness Policy":   "weaknesspolicy",
	"Expert Belt":       "expertbelt",
	"Wide Lens":         "widelens",
	"Scope Lens":        "scopelens",
	"Booster Energy":    "boosterenergy",
	"Clear Amulet":      "clearamulet",
	"Covert Cloak":      "covertcloak",
	"Loaded Dice":       "loadeddice",
	"Mirror Herb":       "mirrorherb",
	"Ability Shield":    "abilityshield",
	"Rusted Sword":      "rustedsword",
	"Rusted Shield":     "rustedshield",
	"Light Clay":        "lightclay",
	"Damp Rock":         "damprock",
	"Heat Rock":         "heatrock",
	"Icy Rock":          "icyrock",
	"Terrain Extender":  "terrainextender",
	"Electric Seed":     "electricseed",
	"Grassy Seed":       "grassyseed",
	"Psychic Seed":      "psychicseed",
	"Misty Seed":        "mistyseed",
	"Aguav Berry":       "aguavberry",
	"Iapapa Berry":      "iapapaberry",
	"Wiki Berry":        "wikiberry",
	"Mago Berry":        "magoberry",
	"Rowap Berry":       "rowapberry",
	"Coba Berry":        "cobaberry",
	"Yache Berry":       "yacheberry",
	"Occa Berry":        "occaberry",
	"Haban Berry":       "habanberry",
	"Babiri Berry":      "babiriberry",
	"Chople Berry":      "chopleberry",
	"Rindo Berry":       "rindoberry",
	"Wacan Berry":       "wacanberry",
	"Kasib Berry":       "kasibberry",
	"Roseli Berry":      "roseliberry",
	"Shuca Berry":       "shucaberry",
	"Passho Berry":      "passhoberry",
	"Charti Berry":      "chartiberry",
	"Payapa Berry":      "payapaberry",
	"Colbur Berry":      "colburberry",
	"Tanga Berry":       "tangaberry",
	"Kebia Berry":       "kebiaberry",
	"Chilan Berry":      "chilanberry",
	"Throat Spray":      "throatspray",
	"Room Service":      "roomservice",
	"Blunder Policy":    "blunderpolicy",
	"Heavy-Duty Boots":  "heavydutyboots",
	"Sticky Barb":       "stickybarb",
	"Red Card":          "redcard",
	"Zoom Lens":         "zoomlens",
	"Bright Powder":     "brightpowder",
	"Wellspring Mask":   "wellspringmask",
	"Hearthflame Mask":  "hearthflamemask",
	"Cornerstone Mask":  "cornerstonemask",
	"Mystic Water":      "mysticwater",
	"Charcoal":          "charcoal",
	"Magnet":            "magnet",
	"Miracle Seed":      "miracleseed",
	"Never-Melt Ice":    "nevermeltice",
	"Black Glasses":     "blackglasses",
	"Spell Tag":         "spelltag",
	"Metal Coat":        "metalcoat",
	"Twisted Spoon":     "twistedspoon",
	"Silk Scarf":        "silkscarf",
	"Fairy Feather":     "fairyfeather",
}

// Lookup returns the dex entry for an already-canonical name.
func Lookup(name string) (Entry, bool) {
	e, ok := Pokedex[name]
	return e, ok
}

// LookupItem resolves an item name, tolerating case differences.
func LookupItem(name string) (string, bool) {
	if slug, ok := Items[name]; ok {
		return slug, true
	}
	for k, slug := range Items {
		if strings.EqualFold(k, name) {
			return slug, true
		}
	}
	return "", false
}
