package assets

// championLanes is the static champion-to-lane reference used when the
// role-inference source is unavailable. Values use the same slash-separated
// tag format the scraped sources produce.
var championLanes = map[string]string{
	"Aatrox":       "Top",
	"Ahri":         "Mid",
	"Akali":        "Mid/Top",
	"Alistar":      "Support",
	"Amumu":        "Jungle/Support",
	"Annie":        "Mid",
	"Aphelios":     "Bot",
	"Ashe":         "Bot/Support",
	"Aurelion Sol": "Mid",
	"Azir":         "Mid",
	"Bard":         "Support",
	"Blitzcrank":   "Support",
	"Brand":        "Support/Mid",
	"Braum":        "Support",
	"Caitlyn":      "Bot",
	"Camille":      "Top",
	"Cassiopeia":   "Mid",
	"Cho'Gath":     "Top",
	"Corki":        "Mid/Bot",
	"Darius":       "Top",
	"Diana":        "Jungle/Mid",
	"Dr. Mundo":    "Top/Jungle",
	"Draven":       "Bot",
	"Ekko":         "Jungle/Mid",
	"Elise":        "Jungle",
	"Evelynn":      "Jungle",
	"Ezreal":       "Bot",
	"Fiddlesticks": "Jungle",
	"Fiora":        "Top",
	"Fizz":         "Mid",
	"Galio":        "Mid/Support",
	"Gangplank":    "Top",
	"Garen":        "Top",
	"Gnar":         "Top",
	"Gragas":       "Jungle/Top",
	"Graves":       "Jungle",
	"Gwen":         "Top",
	"Hecarim":      "Jungle",
	"Heimerdinger": "Mid/Top",
	"Hwei":         "Mid/Support",
	"Illaoi":       "Top",
	"Irelia":       "Top/Mid",
	"Ivern":        "Jungle",
	"Janna":        "Support",
	"Jarvan IV":    "Jungle",
	"Jax":          "Top/Jungle",
	"Jayce":        "Top/Mid",
	"Jhin":         "Bot",
	"Jinx":         "Bot",
	"K'Sante":      "Top",
	"Kai'Sa":       "Bot",
	"Kalista":      "Bot",
	"Karma":        "Support",
	"Karthus":      "Jungle",
	"Kassadin":     "Mid",
	"Katarina":     "Mid",
	"Kayle":        "Top",
	"Kayn":         "Jungle",
	"Kennen":       "Top",
	"Kha'Zix":      "Jungle",
	"Kindred":      "Jungle",
	"Kled":         "Top",
	"Kog'Maw":      "Bot",
	"LeBlanc":      "Mid",
	"Lee Sin":      "Jungle",
	"Leona":        "Support",
	"Lillia":       "Jungle",
	"Lissandra":    "Mid",
	"Lucian":       "Bot",
	"Lulu":         "Support",
	"Lux":          "Support/Mid",
	"Malphite":     "Top",
	"Malzahar":     "Mid",
	"Maokai":       "Support/Jungle",
	"Master Yi":    "Jungle",
	"Milio":        "Support",
	"Miss Fortune": "Bot",
	"Mordekaiser":  "Top",
	"Morgana":      "Support",
	"Naafiri":      "Mid",
	"Nami":         "Support",
	"Nasus":        "Top",
	"Nautilus":     "Support",
	"Neeko":        "Mid/Support",
	"Nidalee":      "Jungle",
	"Nilah":        "Bot",
	"Nocturne":     "Jungle",
	"Nunu & Willump": "Jungle",
	"Olaf":         "Top/Jungle",
	"Orianna":      "Mid",
	"Ornn":         "Top",
	"Pantheon":     "Support/Mid",
	"Poppy":        "Jungle/Top",
	"Pyke":         "Support",
	"Qiyana":       "Mid",
	"Quinn":        "Top",
	"Rakan":        "Support",
	"Rammus":       "Jungle",
	"Rek'Sai":      "Jungle",
	"Rell":         "Support",
	"Renata Glasc": "Support",
	"Renekton":     "Top",
	"Rengar":       "Jungle/Top",
	"Riven":        "Top",
	"Rumble":       "Top/Mid",
	"Ryze":         "Mid",
	"Samira":       "Bot",
	"Sejuani":      "Jungle",
	"Senna":        "Support",
	"Seraphine":    "Support/Bot",
	"Sett":         "Top",
	"Shaco":        "Jungle",
	"Shen":         "Top",
	"Shyvana":      "Jungle",
	"Singed":       "Top",
	"Sion":         "Top",
	"Sivir":        "Bot",
	"Skarner":      "Jungle",
	"Smolder":      "Bot",
	"Sona":         "Support",
	"Soraka":       "Support",
	"Swain":        "Support/Mid",
	"Sylas":        "Mid",
	"Syndra":       "Mid",
	"Tahm Kench":   "Support/Top",
	"Taliyah":      "Jungle/Mid",
	"Talon":        "Mid/Jungle",
	"Taric":        "Support",
	"Teemo":        "Top",
	"Thresh":       "Support",
	"Tristana":     "Bot/Mid",
	"Trundle":      "Top/Jungle",
	"Tryndamere":   "Top",
	"Twisted Fate": "Mid",
	"Twitch":       "Bot/Jungle",
	"Udyr":         "Jungle/Top",
	"Urgot":        "Top",
	"Varus":        "Bot",
	"Vayne":        "Bot/Top",
	"Veigar":       "Mid/Bot",
	"Vel'Koz":      "Support/Mid",
	"Vex":          "Mid",
	"Vi":           "Jungle",
	"Viego":        "Jungle",
	"Viktor":       "Mid",
	"Vladimir":     "Mid/Top",
	"Volibear":     "Top/Jungle",
	"Warwick":      "Jungle/Top",
	"Wukong":       "Jungle/Top",
	"Xayah":        "Bot",
	"Xerath":       "Support/Mid",
	"Xin Zhao":     "Jungle",
	"Yasuo":        "Mid/Top",
	"Yone":         "Mid/Top",
	"Yorick":       "Top",
	"Yuumi":        "Support",
	"Zac":          "Jungle",
	"Zed":          "Mid",
	"Zeri":         "Bot",
	"Ziggs":        "Mid/Bot",
	"Zilean":       "Support",
	"Zoe":          "Mid",
	"Zyra":         "Support",
}

// LaneFor returns the reference lane tags for a champion, or "" when the
// champion is not in the table (callers treat empty as "any role").
func LaneFor(championName string) string {
	return championLanes[championName]
}
