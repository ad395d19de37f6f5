package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lumapay/corebank/internal/domain"
	"github.com/lumapay/corebank/internal/usecase"
)

// StatusResponse is the envelope for mutating endpoints:
// {"status":"success"|"error", ...}.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the wire error body.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PixTransferResponse is the success body for /api/pix/transferir.
type PixTransferResponse struct {
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	TransactionID string          `json:"transaction_id"`
	SaldoRestante decimal.Decimal `json:"saldo_restante"`
}

// PixTransferFromResult converts a payout result to the wire shape.
func PixTransferFromResult(res *usecase.PixPayoutResult) *PixTransferResponse {
	return &PixTransferResponse{
		Status:        "success",
		Message:       "Transferência PIX realizada com sucesso",
		TransactionID: res.TransactionID,
		SaldoRestante: res.NewBalance,
	}
}

// GiftCardPurchaseResponse is the success body for /api/giftcards/comprar.
type GiftCardPurchaseResponse struct {
	Status        string          `json:"status"`
	Message       string          `json:"message"`
	TransactionID string          `json:"transaction_id"`
	Codigo        string          `json:"codigo"`
	SaldoRestante decimal.Decimal `json:"saldo_restante"`
}

// GiftCardPurchaseFromResult converts a purchase result to the wire shape.
func GiftCardPurchaseFromResult(res *usecase.GiftCardPurchaseResult) *GiftCardPurchaseResponse {
	return &GiftCardPurchaseResponse{
		Status:        "success",
		Message:       "Gift card comprado com sucesso",
		TransactionID: res.TransactionID,
		Codigo:        res.Code,
		SaldoRestante: res.NewBalance,
	}
}

// DashboardResponse is the envelope for /api/dashboard:
// {"success":true, "data":{...}} on success, {"success":false, "error":...}
// on failure.
type DashboardResponse struct {
	Success bool           `json:"success"`
	Data    *DashboardData `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// DashboardData is the dashboard payload. Field names follow the
// published contract (camelCase Portuguese).
type DashboardData struct {
	TotalTransacoes    int                    `json:"totalTransacoes"`
	ValorTotal         decimal.Decimal        `json:"valorTotal"`
	LucroTotal         decimal.Decimal        `json:"lucroTotal"`
	TransacoesPorMes   []MonthGroupResponse   `json:"transacoesPorMes"`
	TransacoesRecentes []*TransactionResponse `json:"transacoesRecentes"`
}

// MonthGroupResponse is one calendar-month aggregate.
type MonthGroupResponse struct {
	Mes        string          `json:"mes"`
	Lucro      decimal.Decimal `json:"lucro"`
	Transacoes int             `json:"transacoes"`
}

// DashboardFromData converts the aggregated dashboard to the wire shape.
func DashboardFromData(data *usecase.DashboardData) *DashboardResponse {
	months := make([]MonthGroupResponse, len(data.ByMonth))
	for i, g := range data.ByMonth {
		months[i] = MonthGroupResponse{
			Mes:        g.Month,
			Lucro:      g.Profit,
			Transacoes: g.Count,
		}
	}

	return &DashboardResponse{
		Success: true,
		Data: &DashboardData{
			TotalTransacoes:    data.TotalCount,
			ValorTotal:         data.TotalAmount,
			LucroTotal:         data.TotalProfit,
			TransacoesPorMes:   months,
			TransacoesRecentes: TransactionsFromDomain(data.Recent),
		},
	}
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Tipo      string          `json:"tipo"`
	Valor     decimal.Decimal `json:"valor"`
	Lucro     decimal.Decimal `json:"lucro"`
	Moeda     string          `json:"moeda"`
	Status    string          `json:"status"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Tipo:      string(t.Kind),
		Valor:     t.Amount,
		Lucro:     t.Profit,
		Moeda:     t.Currency,
		Status:    string(t.Status),
		Metadata:  t.Metadata,
		CreatedAt: t.CreatedAt,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txns []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txns))
	for i, t := range txns {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// ProposalResponse represents a financing proposal in API responses.
type ProposalResponse struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Veiculo      string          `json:"veiculo"`
	ValorTotal   decimal.Decimal `json:"valor_total"`
	Entrada      decimal.Decimal `json:"entrada"`
	Parcelas     int             `json:"parcelas"`
	ValorParcela decimal.Decimal `json:"valor_parcela"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProposalFromDomain converts a domain proposal to a response.
func ProposalFromDomain(p *domain.Proposal) *ProposalResponse {
	return &ProposalResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Veiculo:      p.Vehicle,
		ValorTotal:   p.TotalValue,
		Entrada:      p.DownPayment,
		Parcelas:     p.Installments,
		ValorParcela: p.Installment,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ProposalsFromDomain converts domain proposals to responses.
func ProposalsFromDomain(proposals []*domain.Proposal) []*ProposalResponse {
	result := make([]*ProposalResponse, len(proposals))
	for i, p := range proposals {
		result[i] = ProposalFromDomain(p)
	}
	return result
}

// WalletResponse is the /api/carteira snapshot.
type WalletResponse struct {
	Status    string          `json:"status"`
	UserID    string          `json:"user_id"`
	Saldo     decimal.Decimal `json:"saldo"`
	Moeda     string          `json:"moeda"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// WalletFromDomain converts a domain wallet to a response.
func WalletFromDomain(w *domain.Wallet) *WalletResponse {
	return &WalletResponse{
		Status:    "success",
		UserID:    w.UserID,
		Saldo:     w.Balance,
		Moeda:     w.Currency,
		UpdatedAt: w.UpdatedAt,
	}
}

// AdminCreditResponse is the success body for /api/admin/credito.
type AdminCreditResponse struct {
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// AdminReversalResponse is the success body for /api/admin/estorno.
type AdminReversalResponse struct {
	Status        string          `json:"status"`
	TransactionID string          `json:"transaction_id"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// ReportResponse is the /api/admin/relatorio body.
type ReportResponse struct {
	Status       string                 `json:"status"`
	Resumo       ReportSummaryResponse  `json:"resumo"`
	Transactions []*TransactionResponse `json:"transacoes"`
}

// ReportSummaryResponse is the ledger-wide aggregate.
type ReportSummaryResponse struct {
	TotalTransacoes int64           `json:"totalTransacoes"`
	ValorTotal      decimal.Decimal `json:"valorTotal"`
	LucroTotal      decimal.Decimal `json:"lucroTotal"`
}

// ReportFromUseCase converts the admin report to the wire shape.
func ReportFromUseCase(r *usecase.Report) *ReportResponse {
	return &ReportResponse{
		Status: "success",
		Resumo: ReportSummaryResponse{
			TotalTransacoes: r.Summary.Count,
			ValorTotal:      r.Summary.TotalAmount,
			LucroTotal:      r.Summary.TotalProfit,
		},
		Transactions: TransactionsFromDomain(r.Transactions),
	}
}
