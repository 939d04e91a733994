package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/moral-quiz-api/internal/domain/entity"
	"github.com/yourusername/moral-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/moral-quiz-api/internal/pkg/errors"
	"github.com/yourusername/moral-quiz-api/internal/service/scoring"
)

// Ключи Redis для квот AI-ассистента.
const (
	geminiDailyKeyPrefix = "mi:gemini:daily:"
	geminiLastRequestKey = "mi:gemini:last"
)

// systemPrompt задаёт роль ассистента (индонезийский, как в клиентском приложении).
const systemPrompt = `Anda adalah AI asisten yang ahli dalam moral intelligence dan pengembangan karakter. Anda membantu pengguna memahami 7 aspek moral intelligence: Empati, Hati Nurani, Pengendalian Diri, Hormat, Kebaikan Hati, Toleransi, dan Keadilan.

Berikan jawaban yang:
- Praktis dan mudah dipahami
- Berdasarkan teori moral intelligence yang solid
- Menggunakan contoh nyata dari kehidupan sehari-hari
- Mendorong refleksi dan pengembangan diri
- Ramah dan mendukung

Jawab dalam bahasa Indonesia yang natural dan mudah dipahami.`

// geminiRequest — тело запроса generateContent.
type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

// geminiResponse — минимально необходимая часть ответа generateContent.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ChatService — мост к Gemini API для AI-ассистента теста.
// Соблюдает лимиты free tier: минимальный интервал между запросами и
// суточную квоту, счётчики живут в Redis и переживают рестарт.
type ChatService struct {
	apiKey      string
	model       string
	httpClient  *http.Client
	cache       repository.CacheRepository
	quizService *QuizService
	resultRepo  repository.ResultRepository
	minInterval time.Duration
	dailyLimit  int
}

// NewChatService создает новый сервис AI-ассистента
func NewChatService(
	apiKey string,
	model string,
	timeout time.Duration,
	cache repository.CacheRepository,
	quizService *QuizService,
	resultRepo repository.ResultRepository,
	minInterval time.Duration,
	dailyLimit int,
) *ChatService {
	return &ChatService{
		apiKey:      apiKey,
		model:       model,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       cache,
		quizService: quizService,
		resultRepo:  resultRepo,
		minInterval: minInterval,
		dailyLimit:  dailyLimit,
	}
}

// Ask отправляет свободный вопрос пользователя ассистенту.
func (s *ChatService) Ask(ctx context.Context, userID uint, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", apperrors.ErrValidation
	}
	return s.generate(ctx, message)
}

// HelpWithCurrentQuestion просит ассистента помочь с текущим вопросом сессии.
func (s *ChatService) HelpWithCurrentQuestion(ctx context.Context, userID uint) (string, error) {
	view, err := s.quizService.ActiveSessionQuestion(userID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(
		"Saya sedang mengerjakan soal tes moral intelligence untuk aspek %s:\n\n\"%s\"\n\nBantu saya memahami apa yang ditanyakan soal ini dan bagaimana cara merefleksikannya. Jangan berikan jawaban jadi, melainkan panduan untuk berpikir.",
		view.AspectName, view.Text,
	)
	return s.generate(ctx, prompt)
}

// ExplainAspect просит ассистента объяснить один из аспектов.
func (s *ChatService) ExplainAspect(ctx context.Context, aspectName string) (string, error) {
	aspect, err := entity.ParseAspect(aspectName)
	if err != nil {
		return "", apperrors.ErrValidation
	}

	prompt := fmt.Sprintf(
		"Jelaskan aspek moral intelligence \"%s\" secara mendalam: apa artinya, mengapa penting, dan bagaimana cara mengembangkannya dalam kehidupan sehari-hari.",
		aspect.DisplayName(),
	)
	return s.generate(ctx, prompt)
}

// DiscussResults просит ассистента обсудить последний результат пользователя.
func (s *ChatService) DiscussResults(ctx context.Context, userID uint) (string, error) {
	results, _, err := s.resultRepo.ListForUser(userID, 1, 0)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", apperrors.ErrNotFound
	}

	latest := results[0]
	var b strings.Builder
	fmt.Fprintf(&b, "Saya baru saja menyelesaikan tes moral intelligence dengan skor keseluruhan %.1f%% (%s).\n\nSkor per aspek:\n", latest.OverallScore, latest.OverallCategory)
	for _, a := range entity.AllAspects() {
		if pct, ok := latest.AspectScores[a]; ok {
			fmt.Fprintf(&b, "- %s: %.1f%% (%s)\n", a.DisplayName(), pct, scoring.CategoryFor(pct))
		}
	}
	b.WriteString("\nTolong diskusikan hasil ini: apa kekuatan saya, aspek mana yang perlu dikembangkan, dan langkah konkret apa yang bisa saya ambil.")

	return s.generate(ctx, b.String())
}

// generate выполняет запрос к Gemini API с учётом квот.
func (s *ChatService) generate(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("gemini api key is not configured")
	}

	if err := s.checkQuota(); err != nil {
		return "", err
	}

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.9,
			MaxOutputTokens: 1024, // Лимит free tier
		},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		s.model, s.apiKey,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		log.Printf("[ChatService] Gemini API вернул 429, квота upstream исчерпана")
		return "", apperrors.ErrConflict
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[ChatService] Gemini API ошибка: status=%d body=%s", resp.StatusCode, string(body))
		return "", fmt.Errorf("gemini api error: status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("gemini response parse failed: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "Maaf, saya tidak dapat memberikan respons saat ini. Silakan coba dengan pertanyaan yang lebih spesifik tentang moral intelligence.", nil
	}

	s.recordRequest()
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// checkQuota проверяет минимальный интервал и суточный лимит.
// Недоступный Redis не блокирует ассистента, только логируется.
func (s *ChatService) checkQuota() error {
	// Ключ последнего запроса живёт ровно minInterval: пока он жив,
	// следующий запрос не проходит.
	if busy, err := s.cache.Exists(geminiLastRequestKey); err != nil {
		log.Printf("[ChatService] Не удалось проверить интервал запросов: %v", err)
	} else if busy {
		return apperrors.ErrConflict
	}

	dailyKey := geminiDailyKeyPrefix + time.Now().Format("2006-01-02")
	if countStr, err := s.cache.Get(dailyKey); err == nil {
		if count, convErr := strconv.Atoi(countStr); convErr == nil && count >= s.dailyLimit {
			return apperrors.ErrConflict
		}
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		log.Printf("[ChatService] Не удалось прочитать суточный счётчик: %v", err)
	}
	return nil
}

// recordRequest фиксирует успешный запрос в счётчиках квоты.
func (s *ChatService) recordRequest() {
	now := time.Now()
	if s.minInterval > 0 {
		if err := s.cache.Set(geminiLastRequestKey, strconv.FormatInt(now.Unix(), 10), s.minInterval); err != nil {
			log.Printf("[ChatService] Не удалось записать время запроса: %v", err)
		}
	}

	dailyKey := geminiDailyKeyPrefix + now.Format("2006-01-02")
	count, err := s.cache.Increment(dailyKey)
	if err != nil {
		log.Printf("[ChatService] Не удалось увеличить суточный счётчик: %v", err)
		return
	}
	if count == 1 {
		// Счётчик истекает в конце суток
		midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		if err := s.cache.ExpireAt(dailyKey, midnight); err != nil {
			log.Printf("[ChatService] Не удалось установить TTL суточного счётчика: %v", err)
		}
	}
}
