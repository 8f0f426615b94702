package inference

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Veraticus/listwise/internal/model"
)

func TestService_Infer(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		wantType       model.ListType
		wantConfidence model.Confidence
	}{
		{name: "empty text falls back to notes", text: "", wantType: model.ListTypeNotes, wantConfidence: model.ConfidenceLow},
		{name: "no vocabulary falls back to notes", text: "ideia para o aniversário", wantType: model.ListTypeNotes, wantConfidence: model.ConfidenceLow},
		{name: "single shopping pattern", text: "arroz", wantType: model.ListTypeShopping, wantConfidence: model.ConfidenceHigh},
		{name: "shopping with diacritics", text: "Feijão e maçã", wantType: model.ListTypeShopping, wantConfidence: model.ConfidenceHigh},
		{name: "movie", text: "assistir filme do Nolan", wantType: model.ListTypeMovies, wantConfidence: model.ConfidenceHigh},
		{name: "book", text: "ler o livro da autora", wantType: model.ListTypeBooks, wantConfidence: model.ConfidenceHigh},
		{name: "game", text: "zerar Zelda no Switch", wantType: model.ListTypeGames, wantConfidence: model.ConfidenceHigh},
		{name: "todo", text: "ligar para o dentista amanhã", wantType: model.ListTypeTodo, wantConfidence: model.ConfidenceHigh},
		{name: "higher score wins", text: "comprar 2 kg de carne no mercado, ver filme", wantType: model.ListTypeShopping, wantConfidence: model.ConfidenceHigh},
		{name: "tie goes to priority", text: "filme jogo", wantType: model.ListTypeMovies, wantConfidence: model.ConfidenceHigh},
		{name: "repeated pattern counts once", text: "filme filme filme ler livro", wantType: model.ListTypeBooks, wantConfidence: model.ConfidenceHigh},
	}

	svc := NewService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Infer(tt.text)
			assert.Equal(t, tt.wantType, got.ListType)
			assert.Equal(t, tt.wantConfidence, got.Confidence)
		})
	}
}

// Confidence has three levels but a score of one is already high: any
// match at all yields high, so medium is never returned.
func TestService_Infer_ConfidenceIsTwoTier(t *testing.T) {
	svc := NewService()

	one := svc.Infer("netflix")
	assert.Equal(t, 1, one.Scores[model.ListTypeMovies])
	assert.Equal(t, model.ConfidenceHigh, one.Confidence)

	many := svc.Infer("assistir filme na netflix, trailer")
	assert.Equal(t, 4, many.Scores[model.ListTypeMovies])
	assert.Equal(t, model.ConfidenceHigh, many.Confidence)

	for score := 0; score < 10; score++ {
		assert.NotEqual(t, model.ConfidenceMedium, calculateConfidence(score))
	}
}

func TestService_Options(t *testing.T) {
	custom := Rule{ListType: model.ListTypeTodo, Name: "chores", Pattern: regexp.MustCompile(`\blouca\b`)}
	svc := NewService(WithRules(custom))

	got := svc.Infer("lavar a louça")
	assert.Equal(t, model.ListTypeTodo, got.ListType)

	reordered := NewService(WithPriority(model.ListTypeGames, model.ListTypeMovies))
	assert.Equal(t, model.ListTypeGames, reordered.Infer("filme jogo").ListType)
}

func TestService_PriorityIsCompleted(t *testing.T) {
	partial := NewService(WithPriority(model.ListTypeMovies))
	assert.Equal(t, model.ListTypeGames, partial.Infer("zerar no switch").ListType)
	assert.Equal(t, model.ListTypeMovies, partial.Infer("filme jogo").ListType)
	assert.Equal(t, model.ListTypeMovies, partial.priority[0])

	wishlist := model.ListType("wishlist")
	custom := NewService(WithRules(Rule{ListType: wishlist, Name: "gift", Pattern: regexp.MustCompile(`\bpresente\b`)}))
	assert.Equal(t, wishlist, custom.Infer("presente da Ana").ListType)
	assert.Equal(t, wishlist, custom.priority[len(custom.priority)-1])
}

func TestService_Matches(t *testing.T) {
	svc := NewService()
	assert.Equal(t, []string{"movies/noun", "movies/verb"}, svc.Matches("Assistir o filme"))
	assert.Empty(t, svc.Matches("nada aqui"))
}

func TestService_ConcurrentUse(t *testing.T) {
	svc := NewService()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, model.ListTypeShopping, svc.Infer("2 kg arroz").ListType)
		}()
	}
	wg.Wait()
}

func TestFold(t *testing.T) {
	assert.Equal(t, "feijao com acucar", Fold("Feijão com Açúcar"))
	assert.Equal(t, "amanha", Fold("AMANHÃ"))
	assert.Equal(t, "", Fold(""))
}
