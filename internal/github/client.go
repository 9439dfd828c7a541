package github

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mitrokit/ventures-api/internal/config"
	"github.com/mitrokit/ventures-api/internal/domain"
	apperrors "github.com/mitrokit/ventures-api/pkg/util"
)

// Client proxies the GitHub repository listing API and maps repositories to
// portfolio project entries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient builds a client from configuration.
func NewClient(cfg config.GitHubConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
	}
}

type repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Fork        bool      `json:"fork"`
	Language    string    `json:"language"`
	Topics      []string  `json:"topics"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	HTMLURL     string    `json:"html_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type apiError struct {
	Message string `json:"message"`
}

// ListProjects fetches the authenticated user's repositories and maps them
// to project entries, skipping forks with no stars.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if c.token == "" {
		return nil, apperrors.NewDomainError("CONFIGURATION_MISSING", "github token not configured", http.StatusInternalServerError, nil)
	}

	url := c.baseURL + "/user/repos?sort=updated&per_page=100"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "mitrokit-ventures")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError(fmt.Sprintf("github request failed: %v", err), http.StatusBadGateway)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		message := apiErr.Message
		if message == "" {
			message = "failed to fetch repositories"
		}
		return nil, apperrors.NewUpstreamError(message, resp.StatusCode)
	}

	var repos []repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, apperrors.NewUpstreamError("invalid response from github", http.StatusBadGateway)
	}

	projects := make([]domain.Project, 0, len(repos))
	for _, r := range repos {
		if r.Fork && r.Stars == 0 {
			continue
		}
		projects = append(projects, mapProject(r))
	}
	return projects, nil
}

func mapProject(r repo) domain.Project {
	description := r.Description
	if description == "" {
		description = "No description available"
	}
	return domain.Project{
		ID:          r.ID,
		Title:       r.Name,
		Description: description,
		Category:    Categorize(r.Topics),
		Technology:  TechStack(r.Topics, r.Language),
		Year:        strconv.Itoa(r.UpdatedAt.Year()),
		Stats:       domain.ProjectStats{Stars: r.Stars, Forks: r.Forks},
		Color:       randomColor(),
		Link:        r.HTMLURL,
		GitHub:      r.HTMLURL,
	}
}

var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Education", []string{"school", "education", "student"}},
	{"FinTech", []string{"finance", "payment", "mpesa", "billing"}},
	{"AI/ML", []string{"ai", "ml", "machine-learning", "tensorflow"}},
	{"ERP", []string{"erp", "enterprise"}},
	{"Network", []string{"network", "router", "hotspot"}},
	{"E-commerce", []string{"ecommerce", "shop", "store", "mall"}},
}

// Categorize derives a project category from repository topics.
func Categorize(topics []string) string {
	joined := strings.ToLower(strings.Join(topics, " "))
	for _, entry := range categoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(joined, keyword) {
				return entry.category
			}
		}
	}
	return "Other"
}

var topicNames = map[string]string{
	"react":      "React",
	"nextjs":     "Next.js",
	"nodejs":     "Node.js",
	"python":     "Python",
	"php":        "PHP",
	"laravel":    "Laravel",
	"flutter":    "Flutter",
	"firebase":   "Firebase",
	"redux":      "Redux",
	"typescript": "TypeScript",
	"javascript": "JavaScript",
	"postgresql": "PostgreSQL",
	"mysql":      "MySQL",
	"sqlite":     "SQLite",
	"tailwind":   "Tailwind CSS",
	"bootstrap":  "Bootstrap",
	"android":    "Android",
	"kotlin":     "Kotlin",
	"vercel":     "Vercel",
	"aws":        "AWS",
	"prisma":     "Prisma",
	"tensorflow": "TensorFlow",
}

// TechStack builds a display string from the primary language and up to
// five recognized topics.
func TechStack(topics []string, language string) string {
	stack := make([]string, 0, 5)
	if language != "" {
		stack = append(stack, language)
	}
	for _, topic := range topics {
		mapped, ok := topicNames[strings.ToLower(topic)]
		if !ok {
			continue
		}
		duplicate := false
		for _, existing := range stack {
			if existing == mapped {
				duplicate = true
				break
			}
		}
		if !duplicate {
			stack = append(stack, mapped)
		}
	}
	if len(stack) > 5 {
		stack = stack[:5]
	}
	return strings.Join(stack, ", ")
}

var palette = []string{
	"#00F5FF", "#ff9500", "#39FF14", "#FF3CAC", "#0070F3",
	"#ff0000", "#FF6600", "#FF9900", "#00FFAA", "#a855f7",
}

func randomColor() string {
	return palette[rand.Intn(len(palette))]
}
