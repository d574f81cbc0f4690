package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher
	IconGithub    = "\uf09b" // github
	IconTerminal  = "\uf120" // terminal
	IconConfig    = "\ue615" // config
	IconWarning   = "\uf071" // warning
)
