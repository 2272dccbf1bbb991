package verse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/realjbmangum/clarkstark/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	// NLT on api.scripture.api.bible
	nltBibleID = "65eec8e0b60e656b-01"

	oneHour           = 60 * 60
	verseCacheExpire  = oneHour * 24
	verseCacheSizeMin = 512 * 1024
)

// Passage is the slice of an API response the service cares about.
type Passage struct {
	Reference string
	Text      string
}

type bibleApiResponse struct {
	Data struct {
		Reference string `json:"reference"`
		Content   string `json:"content"`
	} `json:"data"`
}

// BibleApi fetches passages from api.scripture.api.bible and caches
// them, the same passage is requested at most once a day.
type BibleApi struct {
	cache      *freecache.Cache
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewBibleApi(baseURL, apiKey string, httpClient *http.Client) *BibleApi {
	return &BibleApi{
		cache:      freecache.NewCache(verseCacheSizeMin),
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// GetPassage fetches the NLT text for a human readable reference like
// "Hebrews 12:11".
func (api *BibleApi) GetPassage(ctx context.Context, reference string) (_ *Passage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "bibleApi.getPassage")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	cacheKey := []byte("passage::" + reference)
	if passageBytes, cacheErr := api.cache.Get(cacheKey); cacheErr == nil {
		var apiResp bibleApiResponse
		if err := json.Unmarshal(passageBytes, &apiResp); err == nil {
			return passageFromResponse(&apiResp, reference), nil
		}
		log.Errorf("failed to unmarshal cached passage %s: %s", reference, err)
	}

	passageID := referenceToPassageID(reference)
	passageURL := fmt.Sprintf(
		"%s/bibles/%s/passages/%s?content-type=text&include-notes=false&include-titles=false&include-chapter-numbers=false&include-verse-numbers=false",
		api.baseURL, nltBibleID, passageID,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", passageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("api-key", api.apiKey)

	resp, err := api.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read bible api response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bible api status %d: %s", resp.StatusCode, string(respBytes))
	}

	var apiResp bibleApiResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal bible api response: %w", err)
	}
	if strings.TrimSpace(apiResp.Data.Content) == "" {
		return nil, fmt.Errorf("bible api returned empty passage for %s", reference)
	}

	if err := api.cache.Set(cacheKey, respBytes, verseCacheExpire); err != nil {
		log.Errorf("failed to cache passage %s: %s", reference, err)
	}

	return passageFromResponse(&apiResp, reference), nil
}

func passageFromResponse(apiResp *bibleApiResponse, fallbackReference string) *Passage {
	reference := apiResp.Data.Reference
	if reference == "" {
		reference = fallbackReference
	}
	return &Passage{
		Reference: reference,
		Text:      strings.TrimSpace(apiResp.Data.Content),
	}
}

var referenceRegex = regexp.MustCompile(`^(.+?)\s+(\d+):(.+)$`)

var bookCodes = map[string]string{
	"Genesis": "GEN", "Exodus": "EXO", "Leviticus": "LEV", "Numbers": "NUM",
	"Deuteronomy": "DEU", "Joshua": "JOS", "Judges": "JDG", "Ruth": "RUT",
	"1 Samuel": "1SA", "2 Samuel": "2SA", "1 Kings": "1KI", "2 Kings": "2KI",
	"1 Chronicles": "1CH", "2 Chronicles": "2CH", "Ezra": "EZR", "Nehemiah": "NEH",
	"Esther": "EST", "Job": "JOB", "Psalm": "PSA", "Psalms": "PSA",
	"Proverbs": "PRO", "Ecclesiastes": "ECC", "Song of Solomon": "SNG",
	"Isaiah": "ISA", "Jeremiah": "JER", "Lamentations": "LAM", "Ezekiel": "EZK",
	"Daniel": "DAN", "Hosea": "HOS", "Joel": "JOL", "Amos": "AMO",
	"Obadiah": "OBA", "Jonah": "JON", "Micah": "MIC", "Nahum": "NAM",
	"Habakkuk": "HAB", "Zephaniah": "ZEP", "Haggai": "HAG", "Zechariah": "ZEC",
	"Malachi": "MAL", "Matthew": "MAT", "Mark": "MRK", "Luke": "LUK",
	"John": "JHN", "Acts": "ACT", "Romans": "ROM", "1 Corinthians": "1CO",
	"2 Corinthians": "2CO", "Galatians": "GAL", "Ephesians": "EPH",
	"Philippians": "PHP", "Colossians": "COL", "1 Thessalonians": "1TH",
	"2 Thessalonians": "2TH", "1 Timothy": "1TI", "2 Timothy": "2TI",
	"Titus": "TIT", "Philemon": "PHM", "Hebrews": "HEB", "James": "JAS",
	"1 Peter": "1PE", "2 Peter": "2PE", "1 John": "1JN", "2 John": "2JN",
	"3 John": "3JN", "Jude": "JUD", "Revelation": "REV",
}

// referenceToPassageID converts "Hebrews 12:11" to "HEB.12.11" and
// "Psalm 18:32-34" to "PSA.18.32-PSA.18.34". Unparseable references are
// passed through unchanged.
func referenceToPassageID(reference string) string {
	match := referenceRegex.FindStringSubmatch(reference)
	if match == nil {
		return reference
	}

	book, chapter, verses := match[1], match[2], match[3]
	bookCode, ok := bookCodes[book]
	if !ok {
		bookCode = strings.ToUpper(book)
		if len(bookCode) > 3 {
			bookCode = bookCode[:3]
		}
	}

	if from, to, found := strings.Cut(verses, "-"); found {
		return fmt.Sprintf("%s.%s.%s-%s.%s.%s", bookCode, chapter, from, bookCode, chapter, to)
	}
	return fmt.Sprintf("%s.%s.%s", bookCode, chapter, verses)
}
