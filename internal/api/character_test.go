package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rpg-api/backend/internal/models"
	"rpg-api/backend/internal/repository"
	"rpg-api/backend/internal/service"
	apperrors "rpg-api/backend/pkg/errors"
	"rpg-api/backend/pkg/i18n"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryCharacterRepository(repository.SeedCharacters())
	handler := NewCharacterHandler(service.NewCharacterService(repo), i18n.NewLocalizer("pt-BR"))

	r := gin.New()
	r.Use(apperrors.ErrorHandler())
	handler.RegisterRoutes(r.Group("/personagens"))
	return r
}

func doRequest(r http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCharacters(t *testing.T, w *httptest.ResponseRecorder) []models.Character {
	t.Helper()
	var out []models.Character
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var out errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func characterNames(characters []models.Character) []string {
	out := make([]string, 0, len(characters))
	for _, c := range characters {
		out = append(out, c.Name)
	}
	return out
}

func TestGetByName(t *testing.T) {
	r := newTestEngine()

	for _, name := range []string{"Gandalf", "gandalf"} {
		w := doRequest(r, http.MethodGet, "/personagens/nome/"+name, "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var c models.Character
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
		assert.Equal(t, "Gandalf", c.Name)
		assert.Equal(t, models.ClassMage, c.Class)
	}
}

func TestGetByNameNotFound(t *testing.T) {
	r := newTestEngine()

	w := doRequest(r, http.MethodGet, "/personagens/nome/Aragorn", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, apperrors.CodeCharacterNotFound, body.Error.Code)
	assert.Equal(t, "Personagem com o nome 'Aragorn' não foi encontrado.", body.Error.Message)
}

func TestGetByNameNotFoundInEnglish(t *testing.T) {
	r := newTestEngine()

	w := doRequest(r, http.MethodGet, "/personagens/nome/Aragorn", "", map[string]string{"Accept-Language": "en-US"})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Character named 'Aragorn' was not found.", decodeError(t, w).Error.Message)
}

func TestGetClericOrMage(t *testing.T) {
	r := newTestEngine()

	w := doRequest(r, http.MethodGet, "/personagens/GetClerigoMago", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Galadriel", "Gandalf", "Celeborn", "Radagast"}, characterNames(decodeCharacters(t, w)))
}

func TestGetStatistics(t *testing.T) {
	r := newTestEngine()

	w := doRequest(r, http.MethodGet, "/personagens/GetEstatisticas", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"quantidadePersonagens":7,"somaInteligencia":235}`, w.Body.String())
}

func TestPostWithValidation(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
		wantMsg  string
	}{
		{
			name:     "defense too low",
			body:     `{"id":8,"nome":"Pippin","defesa":9,"inteligencia":20,"classe":0}`,
			wantCode: http.StatusBadRequest,
			wantErr:  apperrors.CodeDefenseTooLow,
			wantMsg:  "Requisição inválida: a Defesa não pode ser menor que 10. Sugestão: defina um valor de Defesa igual ou maior que 10.",
		},
		{
			name:     "intelligence too high",
			body:     `{"id":8,"nome":"Pippin","defesa":10,"inteligencia":31,"classe":0}`,
			wantCode: http.StatusBadRequest,
			wantErr:  apperrors.CodeIntelligenceTooHigh,
			wantMsg:  "Requisição inválida: a Inteligência não pode ser maior que 30. Sugestão: defina um valor de Inteligência igual ou menor que 30.",
		},
		{
			name:     "malformed body",
			body:     `{"nome":`,
			wantCode: http.StatusBadRequest,
			wantErr:  apperrors.CodeInvalidRequest,
		},
		{
			name:     "unknown class",
			body:     `{"defesa":10,"classe":7}`,
			wantCode: http.StatusBadRequest,
			wantErr:  apperrors.CodeInvalidRequest,
		},
		{
			name:     "accepted at boundaries",
			body:     `{"id":8,"nome":"Pippin","pontosVida":90,"forca":12,"defesa":10,"inteligencia":30,"classe":0}`,
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine()

			w := doRequest(r, http.MethodPost, "/personagens/PostValidacao", tt.body, nil)
			require.Equal(t, tt.wantCode, w.Code)

			if tt.wantErr != "" {
				body := decodeError(t, w)
				assert.Equal(t, tt.wantErr, body.Error.Code)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, body.Error.Message)
				}
				return
			}

			characters := decodeCharacters(t, w)
			require.Len(t, characters, 8)
			assert.Equal(t, models.Character{
				ID: 8, Name: "Pippin", HitPoints: 90, Strength: 12, Defense: 10, Intelligence: 30, Class: models.ClassKnight,
			}, characters[7])
		})
	}
}

func TestPostWithMageValidation(t *testing.T) {
	r := newTestEngine()

	w := doRequest(r, http.MethodPost, "/personagens/PostValidacaoMago", `{"nome":"Saruman","inteligencia":34,"classe":2}`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, apperrors.CodeMageIntelligenceTooLow, body.Error.Code)
	assert.Equal(t, "Um Mago não pode ter Inteligência menor que 35.", body.Error.Message)

	w = doRequest(r, http.MethodPost, "/personagens/PostValidacaoMago", `{"nome":"Saruman","inteligencia":35,"classe":"Mago"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	characters := decodeCharacters(t, w)
	require.Len(t, characters, 8)
	assert.Equal(t, "Saruman", characters[7].Name)

	w = doRequest(r, http.MethodPost, "/personagens/PostValidacaoMago", `{"nome":"Boromir","inteligencia":10,"classe":0}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeCharacters(t, w), 9)
}

func TestGetByClass(t *testing.T) {
	r := newTestEngine()

	w := doRequest(r, http.MethodGet, "/personagens/GetByClasse/0", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Frodo", "Sam", "Hobbit"}, characterNames(decodeCharacters(t, w)))

	w = doRequest(r, http.MethodGet, "/personagens/GetByClasse/0?ordenar=forca", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Hobbit", "Frodo", "Sam"}, characterNames(decodeCharacters(t, w)))

	w = doRequest(r, http.MethodGet, "/personagens/GetByClasse/9", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/personagens/GetByClasse/mago", "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperrors.CodeInvalidRequest, decodeError(t, w).Error.Code)
}

func TestGetQueriesAreIdempotent(t *testing.T) {
	r := newTestEngine()

	for _, target := range []string{"/personagens/GetClerigoMago", "/personagens/GetEstatisticas", "/personagens/GetByClasse/1"} {
		first := doRequest(r, http.MethodGet, target, "", nil)
		second := doRequest(r, http.MethodGet, target, "", nil)
		assert.Equal(t, first.Body.String(), second.Body.String(), target)
	}
}
