package inference

import (
	"regexp"

	"github.com/Veraticus/listwise/internal/model"
)

// Rule is a single vocabulary pattern voting for a list type. Patterns are
// matched against lowercased text with diacritics removed.
type Rule struct {
	Pattern  *regexp.Regexp
	ListType model.ListType
	Name     string
}

func rule(listType model.ListType, name, pattern string) Rule {
	return Rule{ListType: listType, Name: name, Pattern: regexp.MustCompile(pattern)}
}

// defaultRules is ordered by list type and then by pattern; order only
// matters for reporting matched rule names.
var defaultRules = []Rule{
	rule(model.ListTypeShopping, "currency", `r\$|us\$|\$\s*\d|€|\b(reais|real|dolares|dollars?|euros?)\b`),
	rule(model.ListTypeShopping, "measurement", `\b\d+([.,]\d+)?\s*(kg|g|mg|l|ml|un|und|dz|pct|quilos?|litros?|gramas?|duzias?|pacotes?)\b`),
	rule(model.ListTypeShopping, "verb", `\b(comprar|compra|buy|repor|pegar)\b`),
	rule(model.ListTypeShopping, "place", `\b(mercado|supermercado|feira|acougue|padaria|farmacia|grocery|groceries|market)\b`),
	rule(model.ListTypeShopping, "staple", `\b(leite|arroz|feijao|pao|ovos?|cafe|acucar|carne|frango|banana|maca|tomate|milk|bread|eggs?|rice|coffee|sugar)\b`),

	rule(model.ListTypeMovies, "noun", `\b(filmes?|movies?|cinema|longa)\b`),
	rule(model.ListTypeMovies, "verb", `\b(assistir|watch|rever)\b`),
	rule(model.ListTypeMovies, "streaming", `\b(netflix|prime video|disney\+?|hbo|max|mubi|letterboxd)\b`),
	rule(model.ListTypeMovies, "craft", `\b(diretor|director|trailer|oscar|elenco|cast)\b`),

	rule(model.ListTypeBooks, "noun", `\b(livros?|books?|romance|novel|hq|manga|ebook)\b`),
	rule(model.ListTypeBooks, "verb", `\b(ler|reler|read|reread)\b`),
	rule(model.ListTypeBooks, "structure", `\b(paginas?|pages?|capitulos?|chapters?)\b`),
	rule(model.ListTypeBooks, "publishing", `\b(autora?|author|editora|publisher|isbn|kindle|goodreads)\b`),

	rule(model.ListTypeGames, "noun", `\b(jogos?|games?|rpg|dlc)\b`),
	rule(model.ListTypeGames, "verb", `\b(jogar|zerar|play|platinar)\b`),
	rule(model.ListTypeGames, "platform", `\b(ps[345]|playstation|xbox|switch|nintendo|steam|pc gamer)\b`),

	rule(model.ListTypeTodo, "verb", `\b(fazer|ligar|pagar|marcar|agendar|enviar|call|pay|schedule|send|fix|consertar)\b`),
	rule(model.ListTypeTodo, "deadline", `\b(hoje|amanha|segunda|terca|quarta|quinta|sexta|prazo|today|tomorrow|deadline|ate dia)\b`),
}
