package handlers

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/ndbell/nonogram-server/internal/middleware"
	"github.com/ndbell/nonogram-server/internal/repository"
)

type RecordHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
}

func NewRecordHandler(log *logrus.Logger, db *pgxpool.Pool) *RecordHandler {
	return &RecordHandler{
		log:  log,
		repo: repository.New(db),
	}
}

type recordFilterDTO struct {
	Username *string `schema:"username"`
	Rows     *int    `schema:"rows"`
	Cols     *int    `schema:"cols"`
}

func (h *RecordHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	var dto recordFilterDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	if err := dec.Decode(&dto, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, h.log, wrapError(err))
		return
	}

	records, err := h.repo.GetGameRecords(r.Context(), repository.GameRecordFilter{
		Username: dto.Username,
		Rows:     dto.Rows,
		Cols:     dto.Cols,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch records")
		return
	}

	sendJSONOrLog(w, h.log, records)
}

func (h *RecordHandler) GetOwnRecords(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.PlayerClaims(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	records, err := h.repo.GetGameRecords(r.Context(), repository.GameRecordFilter{
		Username: &claims.Username,
	})
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch records")
		return
	}

	sendJSONOrLog(w, h.log, records)
}
