// Package czech bundles the language resources the analysis pipeline
// depends on: a stopword list, lemmatization rules, and the sentiment
// lexicons. Defaults are compiled in; a YAML file can override any of them.
package czech

type Resources struct {
	Stopwords       []string          `yaml:"stopwords"`
	LemmaExceptions map[string]string `yaml:"lemma_exceptions"`
	LemmaSuffixes   []string          `yaml:"lemma_suffixes"`
	PositiveWords   []string          `yaml:"positive_words"`
	NegativeWords   []string          `yaml:"negative_words"`
}

func Default() *Resources {
	return &Resources{
		Stopwords:       defaultStopwords(),
		LemmaExceptions: defaultLemmaExceptions(),
		LemmaSuffixes:   defaultLemmaSuffixes(),
		PositiveWords:   defaultPositiveWords(),
		NegativeWords:   defaultNegativeWords(),
	}
}

// The sentiment lexicons are fixed keyword lists. Matching against them is
// substring-based, so inflected forms containing the base form still count.
func defaultPositiveWords() []string {
	return []string{
		"dobrý", "výborný", "skvělý", "úžasný", "pozitivní",
		"úspěšný", "prospěšný", "nadějný", "optimistický",
	}
}

func defaultNegativeWords() []string {
	return []string{
		"špatný", "horší", "katastrofický", "negativní",
		"problém", "krize", "neúspěch", "pesimistický",
	}
}

func defaultStopwords() []string {
	return []string{
		"a", "aby", "ačkoli", "ale", "anebo", "ani", "ano", "asi", "až",
		"bez", "bude", "budem", "budeme", "budete", "budeš", "budou", "budu",
		"by", "bych", "bychom", "byl", "byla", "byli", "bylo", "byly", "bys",
		"byste", "být", "co", "což", "či", "další", "dnes", "do", "ho", "i",
		"jak", "jaké", "jako", "je", "jeho", "jej", "její", "jejich", "jen",
		"ještě", "ji", "jiné", "již", "jsem", "jsi", "jsme", "jsou", "jste",
		"k", "kam", "kde", "kdo", "kdy", "když", "ke", "která", "které",
		"kterou", "který", "kteří", "ku", "kvůli", "má", "mají", "máme",
		"máte", "mé", "mě", "mezi", "mi", "mít", "mně", "mnou", "moc",
		"mohou", "můj", "může", "my", "na", "nad", "nám", "náš", "naše",
		"ne", "nebo", "nebyl", "není", "něco", "nějak", "některý", "nic",
		"nich", "ním", "no", "o", "od", "ode", "on", "ona", "oni", "ono",
		"ony", "pak", "po", "pod", "podle", "pokud", "pouze", "pro", "proč",
		"proto", "protože", "před", "přes", "při", "s", "se", "si", "sice",
		"své", "svých", "svým", "svými", "ta", "tak", "také", "takže", "tam",
		"tato", "tedy", "ten", "tento", "této", "tím", "tímto", "to", "tohle",
		"toho", "tohoto", "tom", "tomto", "tomuto", "toto", "tu", "tuto",
		"ty", "tyto", "u", "už", "v", "vám", "vás", "váš", "vaše", "ve",
		"více", "však", "všechen", "vy", "z", "za", "zda", "zde", "že",
	}
}

// Irregular forms plus the inflection paradigms of the sentiment lexicon
// entries, so lexicon words survive lemmatization intact. Every value is
// also a key mapping to itself, which keeps lemmatization idempotent.
func defaultLemmaExceptions() map[string]string {
	return map[string]string{
		"dobrý": "dobrý", "dobrá": "dobrý", "dobré": "dobrý", "dobří": "dobrý",
		"dobrého": "dobrý", "dobrému": "dobrý", "dobrém": "dobrý",
		"dobrým": "dobrý", "dobrou": "dobrý", "dobrých": "dobrý",
		"dobrými": "dobrý", "lepší": "dobrý",

		"výborný": "výborný", "výborná": "výborný", "výborné": "výborný",
		"výborní": "výborný", "výborného": "výborný", "výbornou": "výborný",
		"výborných": "výborný",

		"skvělý": "skvělý", "skvělá": "skvělý", "skvělé": "skvělý",
		"skvělí": "skvělý", "skvělého": "skvělý", "skvělou": "skvělý",
		"skvělých": "skvělý",

		"úžasný": "úžasný", "úžasná": "úžasný", "úžasné": "úžasný",
		"úžasní": "úžasný", "úžasného": "úžasný", "úžasnou": "úžasný",

		"pozitivní": "pozitivní", "pozitivního": "pozitivní",
		"pozitivních": "pozitivní", "pozitivním": "pozitivní",
		"pozitivně": "pozitivní",

		"úspěšný": "úspěšný", "úspěšná": "úspěšný", "úspěšné": "úspěšný",
		"úspěšní": "úspěšný", "úspěšného": "úspěšný", "úspěšnou": "úspěšný",
		"úspěšně": "úspěšný",

		"prospěšný": "prospěšný", "prospěšná": "prospěšný",
		"prospěšné": "prospěšný", "prospěšného": "prospěšný",

		"nadějný": "nadějný", "nadějná": "nadějný", "nadějné": "nadějný",
		"nadějného": "nadějný",

		"optimistický": "optimistický", "optimistická": "optimistický",
		"optimistické": "optimistický", "optimisticky": "optimistický",

		"špatný": "špatný", "špatná": "špatný", "špatné": "špatný",
		"špatní": "špatný", "špatného": "špatný", "špatnou": "špatný",
		"špatně": "špatný",

		"horší": "horší", "horšího": "horší", "horším": "horší",
		"horších": "horší",

		"katastrofický": "katastrofický", "katastrofická": "katastrofický",
		"katastrofické": "katastrofický", "katastrofického": "katastrofický",

		"negativní": "negativní", "negativního": "negativní",
		"negativních": "negativní", "negativním": "negativní",
		"negativně": "negativní",

		"problém": "problém", "problému": "problém", "problémy": "problém",
		"problémů": "problém", "problémem": "problém", "problémech": "problém",

		"krize": "krize", "krizi": "krize", "krizí": "krize",
		"krizích": "krize",

		"neúspěch": "neúspěch", "neúspěchu": "neúspěch",
		"neúspěchy": "neúspěch", "neúspěchem": "neúspěch",

		"pesimistický": "pesimistický", "pesimistická": "pesimistický",
		"pesimistické": "pesimistický", "pesimisticky": "pesimistický",

		"člověk": "člověk", "lidé": "člověk", "lidí": "člověk",
		"lidem": "člověk", "lidech": "člověk",
	}
}

// Case endings stripped by the light stemmer, longest first. Stripping
// repeats until no suffix matches, so stemmer output is a fixed point.
func defaultLemmaSuffixes() []string {
	return []string{
		"atech", "ětem", "atům",
		"ách", "ama", "ami", "ata", "aty",
		"ech", "ého", "ému", "ěte", "ěti",
		"ich", "ího", "iho", "ími", "ích",
		"ové", "ovi", "ova", "ovo", "ých", "ými",
		"ám", "át", "em", "ém", "ím", "mi", "ou", "ům", "ým",
		"a", "á", "e", "é", "ě", "i", "í", "o", "u", "ů", "y", "ý",
	}
}
