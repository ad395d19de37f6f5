package handler

import (
	"encoding/json"
	"net/http"

	"github.com/lumapay/corebank/internal/adapter/http/dto"
	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
)

// ProposalHandler handles vehicle financing proposals.
type ProposalHandler struct {
	proposalUC *usecase.ProposalUseCase
}

// NewProposalHandler creates a new ProposalHandler.
func NewProposalHandler(proposalUC *usecase.ProposalUseCase) *ProposalHandler {
	return &ProposalHandler{proposalUC: proposalUC}
}

// Detail returns one proposal, array-wrapped to match the published
// contract.
func (h *ProposalHandler) Detail(w http.ResponseWriter, r *http.Request) {
	var req dto.ProposalDetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	proposal, err := h.proposalUC.GetProposal(r.Context(), req.PropostaID)
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, []*dto.ProposalResponse{dto.ProposalFromDomain(proposal)})
}

// List returns proposals for the back office, optionally filtered by
// status.
func (h *ProposalHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)
	status := domain.ProposalStatus(r.URL.Query().Get("status"))

	proposals, err := h.proposalUC.ListProposals(r.Context(), usecase.ListProposalsInput{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProposalsFromDomain(proposals))
}

// Decide applies a back-office approval or rejection.
func (h *ProposalHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req dto.ProposalDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	proposal, err := h.proposalUC.UpdateProposalStatus(r.Context(), req.PropostaID, domain.ProposalStatus(req.Status))
	if err != nil {
		writeError(w, mapDomainError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProposalFromDomain(proposal))
}
