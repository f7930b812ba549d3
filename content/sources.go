package content

// FallbackTexts are used until, or instead of, a successful literary fetch
var FallbackTexts = []string{
	"人間失格の序章。私は、その男の写真を三葉、見たことがある。",
	"津軽の風景は、私の心に深い印象を残した。",
	"斜陽の家族は、時代の波に飲み込まれていく。",
}

// SutraText is the bundled Heart Sutra; it loops instead of switching excerpts
const SutraText = "観自在菩薩行深般若波羅蜜多時照見五蘊皆空度一切苦厄舎利子色不異空空不異色色即是空空即是色" +
	"受想行識亦復如是舎利子是諸法空相不生不滅不垢不浄不増不減是故空中無色無受想行識無眼耳鼻舌身意" +
	"無色声香味触法無眼界乃至無意識界無無明亦無無明尽乃至無老死亦無老死尽無苦集滅道無智亦無得以無所得故" +
	"菩提薩埵依般若波羅蜜多故心無罣礙無罣礙故無有恐怖遠離一切顛倒夢想究竟涅槃三世諸仏依般若波羅蜜多故" +
	"得阿耨多羅三藐三菩提故知般若波羅蜜多是大神咒是大明咒是無上咒是無等等咒能除一切苦真実不虚故説般若波羅蜜多咒" +
	"即説咒曰羯諦羯諦波羅羯諦波羅僧羯諦菩提薩婆訶般若心経"

// LiteraryURLs are Aozora Bunko pages of Dazai Osamu's works
var LiteraryURLs = []string{
	"https://www.aozora.gr.jp/cards/000035/files/270_14914.html",  // 人間失格
	"https://www.aozora.gr.jp/cards/000035/files/1566_8578.html",  // 津軽
	"https://www.aozora.gr.jp/cards/000035/files/301_14912.html",  // 斜陽
	"https://www.aozora.gr.jp/cards/000035/files/1569_23528.html", // 走れメロス
	"https://www.aozora.gr.jp/cards/000035/files/1595_18106.html", // 富嶽百景
	"https://www.aozora.gr.jp/cards/000035/files/258_20179.html",  // 桜桃
}

// SelectActiveTexts derives the text set for a source from the fetched sets
// Custom falls back to the literary set until a URL has been fetched
func SelectActiveTexts(source Source, fetched Fetched) []string {
	switch source {
	case SourceSutra:
		return []string{SutraText}
	case SourceCustom:
		if len(fetched.Custom) > 0 {
			return fetched.Custom
		}
	}
	if len(fetched.Literary) > 0 {
		return fetched.Literary
	}
	return FallbackTexts
}

// Loops reports whether a source restarts its text when exhausted
func Loops(source Source) bool {
	return source == SourceSutra
}
