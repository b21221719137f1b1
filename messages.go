package signup

import "golang.org/x/text/language"

// Every user-facing string lives in these tables; the rest of the package
// deals in codes only, so adding a locale never touches validation logic.
var messages = map[language.Tag]map[Code]string{
	language.English: {
		CodeUsernameNull:      "Username cannot be null",
		CodeUsernameSize:      "Must have min 4 and max 32 characters",
		CodeEmailNull:         "Email cannot be null",
		CodeEmailInvalid:      "Email is not valid",
		CodeEmailInUse:        "Email in use",
		CodePasswordNull:      "Password cannot be null",
		CodePasswordSize:      "Password must be at least 6 characters",
		CodePasswordPattern:   "Password must have at least 1 uppercase, 1 lowercase letter and 1 number",
		CodeUserCreateSuccess: "user created",
		CodeEmailFailure:      "Email failure",
	},
	language.French: {
		CodeUsernameNull:      "Le nom d'utilisateur ne peut pas être nul",
		CodeUsernameSize:      "Doit contenir entre 4 et 32 caractères",
		CodeEmailNull:         "L'e-mail ne peut pas être nul",
		CodeEmailInvalid:      "L'e-mail n'est pas valide",
		CodeEmailInUse:        "L'e-mail est déjà utilisé",
		CodePasswordNull:      "Le mot de passe ne peut pas être nul",
		CodePasswordSize:      "Le mot de passe doit contenir au moins 6 caractères",
		CodePasswordPattern:   "Le mot de passe doit contenir au moins 1 majuscule, 1 minuscule et 1 chiffre",
		CodeUserCreateSuccess: "utilisateur créé",
		CodeEmailFailure:      "Échec de l'e-mail",
	},
}

// The first supported locale is the base locale every unknown preference
// falls back to.
var (
	supportedLocales = []language.Tag{language.English, language.French}
	localeMatcher    = language.NewMatcher(supportedLocales)
)

// NegotiateLocale picks the best supported locale for an Accept-Language
// header value. An absent or unparseable header selects the base locale.
func NegotiateLocale(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return supportedLocales[0]
	}
	_, i, _ := localeMatcher.Match(tags...)
	return supportedLocales[i]
}

// Resolver maps symbolic codes to localized strings.
type Resolver struct {
	tables map[language.Tag]map[Code]string
	base   language.Tag
}

func NewResolver() *Resolver {
	return &Resolver{tables: messages, base: supportedLocales[0]}
}

// Resolve looks code up in the locale's table. Locales without a table and
// codes missing from a table resolve against the base locale.
func (res *Resolver) Resolve(code Code, locale language.Tag) string {
	if table, ok := res.tables[locale]; ok {
		if msg, ok := table[code]; ok {
			return msg
		}
	}
	return res.tables[res.base][code]
}
