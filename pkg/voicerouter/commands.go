package voicerouter

// DefaultCommands is the static keyword table scanned in declared order
// with first-match-wins semantics. Order is significant: earlier entries
// shadow later ones with overlapping substrings, so the bare "gas"
// keyword sits below the trades whose names could contain it.
func DefaultCommands() []CommandEntry {
	return []CommandEntry{
		{Keyword: "plumber", Route: "/emergency-plumber", Speech: "Taking you to emergency plumbers."},
		{Keyword: "electrician", Route: "/emergency-electrician", Speech: "Taking you to emergency electricians."},
		{Keyword: "locksmith", Route: "/emergency-locksmith", Speech: "Taking you to emergency locksmiths."},
		{Keyword: "boiler", Route: "/emergency-gas-engineer", Speech: "Taking you to emergency gas engineers."},
		{Keyword: "gas", Route: "/emergency-gas-engineer", Speech: "Taking you to emergency gas engineers."},
		{Keyword: "drain", Route: "/emergency-drain-specialist", Speech: "Taking you to emergency drain specialists."},
		{Keyword: "glazier", Route: "/emergency-glazier", Speech: "Taking you to emergency glaziers."},
		{Keyword: "window", Route: "/emergency-glazier", Speech: "Taking you to emergency glaziers."},
		{Keyword: "breakdown", Route: "/emergency-breakdown", Speech: "Taking you to breakdown recovery."},
		{Keyword: "blog", Route: "/blog", Speech: "Opening the blog."},
		{Keyword: "contact", Route: "/contact", Speech: "Opening the contact page."},
		{Keyword: "help", Route: "/contact", Speech: "Opening the contact page."},
		{Keyword: "home", Route: "/", Speech: "Taking you home."},
	}
}
