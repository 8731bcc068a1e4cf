package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	KeyContext  = "VISITOR_CONTEXT"
	KeyLang     = "lang"
	KeyWizardID = "wizard_id"
)
