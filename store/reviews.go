package store

import (
	"net/http"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/ryan-jm/gamecritic/database"
	"github.com/ryan-jm/gamecritic/models"
	"github.com/ryan-jm/gamecritic/validators"
)

// reviewSortColumns is the closed set of sortable fields. Anything outside it
// is rejected before query construction; user input is never interpolated
// into ORDER BY.
var reviewSortColumns = map[string]string{
	"owner":         "reviews.owner",
	"title":         "reviews.title",
	"review_id":     "reviews.review_id",
	"designer":      "reviews.designer",
	"category":      "reviews.category",
	"created_at":    "reviews.created_at",
	"votes":         "reviews.votes",
	// The SELECT list casts the aggregate to text; order on the numeric
	// aggregate itself so pages sort by count, not lexicographically.
	"comment_count": "COUNT(comments.comment_id)",
}

type ReviewStore struct {
	db             *database.DB
	validator      *validators.Validator
	strictCategory bool
}

func NewReviewStore(db *database.DB, validator *validators.Validator, strictCategory bool) *ReviewStore {
	return &ReviewStore{db: db, validator: validator, strictCategory: strictCategory}
}

// ListParams carries the raw query values for the list endpoint.
type ListParams struct {
	SortBy   string
	Order    string
	Category string
	Limit    string
	Page     string
}

// FetchAll returns a filtered, sorted, paginated page of reviews along with
// the effective limit and page. Query validation happens before any database
// round-trip.
func (s *ReviewStore) FetchAll(params ListParams) ([]models.Review, int, int, error) {
	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortColumn, ok := reviewSortColumns[sortBy]
	if !ok {
		return nil, 0, 0, NewRequestError(http.StatusBadRequest, "Invalid sort_by query")
	}

	order := params.Order
	if order == "" {
		order = "desc"
	}
	order = strings.ToLower(order)
	if order != "asc" && order != "desc" {
		return nil, 0, 0, NewRequestError(http.StatusBadRequest, "Invalid order query")
	}

	limit := parsePositive(params.Limit, 10)
	page := parsePositive(params.Page, 1)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select(
			"reviews.owner", "reviews.title", "reviews.review_id",
			"reviews.designer", "reviews.review_img_url", "reviews.category",
			"reviews.created_at", "reviews.votes",
			"COUNT(comments.comment_id)::TEXT AS comment_count",
		).
		From("reviews").
		LeftJoin("comments ON comments.review_id = reviews.review_id")

	if params.Category != "" {
		valid, err := s.validator.Category(params.Category)
		if err != nil {
			return nil, 0, 0, err
		}
		if !valid {
			if s.strictCategory {
				return nil, 0, 0, NewRequestError(http.StatusNotFound, "Category non-existent")
			}
			return []models.Review{}, limit, page, nil
		}
		builder = builder.Where(sq.Eq{"reviews.category": params.Category})
	}

	builder = builder.
		GroupBy("reviews.review_id").
		OrderBy(sortColumn + " " + strings.ToUpper(order)).
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, 0, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		var r models.Review
		err := rows.Scan(
			&r.Owner, &r.Title, &r.ReviewID, &r.Designer, &r.ReviewImgURL,
			&r.Category, &r.CreatedAt, &r.Votes, &r.CommentCount,
		)
		if err != nil {
			return nil, 0, 0, err
		}
		reviews = append(reviews, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, 0, err
	}

	return reviews, limit, page, nil
}

// FetchByID returns one review with its comment count.
func (s *ReviewStore) FetchByID(id interface{}) (*models.Review, error) {
	valid, err := s.validator.Review(id)
	if err != nil {
		return nil, err
	}
	switch valid {
	case validators.StatusInvalid:
		return nil, NewRequestError(http.StatusBadRequest, "Invalid ID provided")
	case validators.StatusNotFound:
		return nil, NewRequestError(http.StatusNotFound, "No review found")
	}

	reviewID, _ := validators.CoerceID(id)

	var r models.Review
	err = s.db.QueryRow(`
		SELECT reviews.owner, reviews.title, reviews.review_id, reviews.designer,
		reviews.review_img_url, reviews.category, reviews.review_body,
		reviews.created_at, reviews.votes, COUNT(comments.comment_id)::TEXT AS comment_count
		FROM reviews
		LEFT JOIN comments
		ON comments.review_id = reviews.review_id
		WHERE reviews.review_id = $1
		GROUP BY reviews.review_id`, reviewID,
	).Scan(
		&r.Owner, &r.Title, &r.ReviewID, &r.Designer, &r.ReviewImgURL,
		&r.Category, &r.ReviewBody, &r.CreatedAt, &r.Votes, &r.CommentCount,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// Update applies a vote delta to a review. A missing delta is a no-op update
// that still returns the current row.
func (s *ReviewStore) Update(id interface{}, incVotes interface{}) (*models.Review, error) {
	delta := 0
	if incVotes != nil {
		var ok bool
		delta, ok = validators.CoerceID(incVotes)
		if !ok {
			return nil, NewRequestError(http.StatusBadRequest, "Invalid inc_vote value provided")
		}
	}

	valid, err := s.validator.Review(id)
	if err != nil {
		return nil, err
	}
	switch valid {
	case validators.StatusInvalid:
		return nil, NewRequestError(http.StatusBadRequest, "Invalid review_id provided")
	case validators.StatusNotFound:
		return nil, NewRequestError(http.StatusNotFound, "No review found")
	}

	reviewID, _ := validators.CoerceID(id)

	var r models.Review
	err = s.db.QueryRow(`
		UPDATE reviews
		SET votes = votes + $1
		WHERE review_id = $2
		RETURNING review_id, title, review_body, designer, review_img_url,
		votes, category, owner, created_at;`,
		delta, reviewID,
	).Scan(
		&r.ReviewID, &r.Title, &r.ReviewBody, &r.Designer, &r.ReviewImgURL,
		&r.Votes, &r.Category, &r.Owner, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// InsertParams is the payload for creating a review.
type InsertParams struct {
	Owner        string `json:"owner"`
	Title        string `json:"title"`
	ReviewBody   string `json:"review_body"`
	Designer     string `json:"designer"`
	Category     string `json:"category"`
	ReviewImgURL string `json:"review_img_url"`
}

func (s *ReviewStore) Insert(params InsertParams) (*models.Review, error) {
	userValid, err := s.validator.User(params.Owner)
	if err != nil {
		return nil, err
	}
	if userValid != validators.StatusOK {
		return nil, NewRequestError(http.StatusBadRequest, "User invalid")
	}

	categoryValid, err := s.validator.Category(params.Category)
	if err != nil {
		return nil, err
	}
	if !categoryValid {
		return nil, NewRequestError(http.StatusBadRequest, "Category invalid")
	}

	imgURL := params.ReviewImgURL
	if imgURL == "" {
		imgURL = models.DefaultReviewImgURL
	}

	var r models.Review
	err = s.db.QueryRow(`
		INSERT INTO reviews
		(title, review_body, designer, category, owner, review_img_url)
		VALUES
		($1, $2, $3, $4, $5, $6)
		RETURNING review_id, title, review_body, designer, review_img_url,
		votes, category, owner, created_at;`,
		params.Title, params.ReviewBody, params.Designer, params.Category,
		params.Owner, imgURL,
	).Scan(
		&r.ReviewID, &r.Title, &r.ReviewBody, &r.Designer, &r.ReviewImgURL,
		&r.Votes, &r.Category, &r.Owner, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// FetchComments returns a page of a review's comments. A review with no
// comments yields an empty page, not a 404.
func (s *ReviewStore) FetchComments(id interface{}, limitParam, pageParam string) ([]models.Comment, error) {
	valid, err := s.validator.Review(id)
	if err != nil {
		return nil, err
	}
	switch valid {
	case validators.StatusInvalid:
		return nil, NewRequestError(http.StatusBadRequest, "Invalid review id")
	case validators.StatusNotFound:
		return nil, NewRequestError(http.StatusNotFound, "Review cannot be found")
	}

	reviewID, _ := validators.CoerceID(id)
	limit := parsePositive(limitParam, 10)
	page := parsePositive(pageParam, 1)

	rows, err := s.db.Query(`
		SELECT comment_id, author, review_id, votes, created_at, body
		FROM comments
		WHERE review_id = $1
		ORDER BY comment_id
		LIMIT $2 OFFSET $3;`,
		reviewID, limit, (page-1)*limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]models.Comment, 0)
	for rows.Next() {
		var cm models.Comment
		err := rows.Scan(&cm.CommentID, &cm.Author, &cm.ReviewID, &cm.Votes, &cm.CreatedAt, &cm.Body)
		if err != nil {
			return nil, err
		}
		comments = append(comments, cm)
	}

	return comments, rows.Err()
}

// InsertComment creates a comment under a review.
func (s *ReviewStore) InsertComment(id interface{}, username, body string) (*models.Comment, error) {
	if username == "" || body == "" {
		return nil, NewRequestError(http.StatusBadRequest, "Invalid username or comment body")
	}

	reviewValid, err := s.validator.Review(id)
	if err != nil {
		return nil, err
	}
	switch reviewValid {
	case validators.StatusInvalid:
		return nil, NewRequestError(http.StatusBadRequest, "Invalid review id")
	case validators.StatusNotFound:
		return nil, NewRequestError(http.StatusNotFound, "Review cannot be found")
	}

	userValid, err := s.validator.User(username)
	if err != nil {
		return nil, err
	}
	switch userValid {
	case validators.StatusInvalid:
		return nil, NewRequestError(http.StatusBadRequest, "Invalid username or comment body")
	case validators.StatusNotFound:
		return nil, NewRequestError(http.StatusNotFound, "User does not exist")
	}

	reviewID, _ := validators.CoerceID(id)

	var cm models.Comment
	err = s.db.QueryRow(`
		INSERT INTO comments
		(author, body, review_id, created_at)
		VALUES
		($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING comment_id, author, review_id, votes, created_at, body;`,
		username, body, reviewID,
	).Scan(&cm.CommentID, &cm.Author, &cm.ReviewID, &cm.Votes, &cm.CreatedAt, &cm.Body)
	if err != nil {
		return nil, err
	}

	return &cm, nil
}

func parsePositive(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
