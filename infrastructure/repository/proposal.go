package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

const (
	proposalsTable = "action_proposals"

	proposalColumns = `p.id, p.created_at, p.updated_at, p.status, p.platform, p.connector_id,
		p.action_type, p.account_id, p.entity_type, p.entity_id, p.payload, p.reason, p.risk,
		p.requires_approval, p.approved_by, p.approved_at, p.executed_at, p.result, p.error,
		p.telegram_chat_id, p.telegram_message_id`
)

var ErrProposalNotFound = fmt.Errorf("proposta não encontrada")

// ProposalFilters restringe a listagem de propostas.
type ProposalFilters struct {
	Status      *domain.ProposalStatus
	Platform    *domain.Platform
	ConnectorID *string
	Limit       uint64
}

type ProposalRepository interface {
	Create(proposal *domain.ActionProposal) error
	GetByID(id string) (*domain.ActionProposal, error)
	List(filters ProposalFilters) ([]*domain.ActionProposal, error)
	ListPending() ([]*domain.ActionProposal, error)
	ExistsRecent(platform domain.Platform, connectorID string, entityType domain.EntityType, entityID string, actionType domain.ActionType, window time.Duration) (bool, error)
	SetStatus(id string, status domain.ProposalStatus, actor *string) error
	SetResult(id string, status domain.ProposalStatus, result map[string]any, execError *string) error
	AttachTelegramMessage(id string, chatID, messageID int64) error
}

type proposalRepository struct {
	conn *postgres.Connection
}

func NewProposalRepository(conn *postgres.Connection) ProposalRepository {
	return &proposalRepository{
		conn: conn,
	}
}

func (r *proposalRepository) Create(proposal *domain.ActionProposal) error {
	payloadJSON, err := json.Marshal(proposal.Payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(proposalsTable).
		Columns(
			"id", "status", "platform", "connector_id", "action_type",
			"account_id", "entity_type", "entity_id", "payload", "reason",
			"risk", "requires_approval",
		).
		Values(
			proposal.ID,
			proposal.Status,
			proposal.Platform,
			proposal.ConnectorID,
			proposal.ActionType,
			proposal.AccountID,
			proposal.EntityType,
			proposal.EntityID,
			payloadJSON,
			proposal.Reason,
			proposal.Risk,
			proposal.RequiresApproval,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *proposalRepository) GetByID(id string) (*domain.ActionProposal, error) {
	query, args, err := squirrel.
		Select(proposalColumns).
		From(proposalsTable + " p").
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	proposal, err := scanProposal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProposalNotFound
		}
		return nil, err
	}

	return proposal, nil
}

func (r *proposalRepository) List(filters ProposalFilters) ([]*domain.ActionProposal, error) {
	builder := squirrel.
		Select(proposalColumns).
		From(proposalsTable + " p").
		OrderBy("p.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"p.status": *filters.Status})
	}
	if filters.Platform != nil {
		builder = builder.Where(squirrel.Eq{"p.platform": *filters.Platform})
	}
	if filters.ConnectorID != nil {
		builder = builder.Where(squirrel.Eq{"p.connector_id": *filters.ConnectorID})
	}
	if filters.Limit > 0 {
		builder = builder.Limit(filters.Limit)
	}

	return r.listWith(builder)
}

func (r *proposalRepository) ListPending() ([]*domain.ActionProposal, error) {
	return r.listWith(squirrel.
		Select(proposalColumns).
		From(proposalsTable + " p").
		Where(squirrel.Eq{"p.status": domain.ProposalStatusProposed}).
		OrderBy("p.created_at").
		PlaceholderFormat(squirrel.Dollar))
}

func (r *proposalRepository) listWith(builder squirrel.SelectBuilder) ([]*domain.ActionProposal, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	proposals := make([]*domain.ActionProposal, 0)
	for rows.Next() {
		proposal, err := scanProposal(rows)
		if err != nil {
			return nil, err
		}
		proposals = append(proposals, proposal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return proposals, nil
}

// ExistsRecent responde a janela de dedup: existe proposta para o mesmo alvo
// e ação, criada dentro da janela, em proposed/approved/executed? Propostas
// rejeitadas ou falhas não contam, para permitir novo disparo.
func (r *proposalRepository) ExistsRecent(
	platform domain.Platform,
	connectorID string,
	entityType domain.EntityType,
	entityID string,
	actionType domain.ActionType,
	window time.Duration,
) (bool, error) {
	since := time.Now().UTC().Add(-window)

	query, args, err := squirrel.
		Select("COUNT(*)").
		From(proposalsTable + " p").
		Where(squirrel.Eq{
			"p.platform":     platform,
			"p.connector_id": connectorID,
			"p.entity_type":  entityType,
			"p.entity_id":    entityID,
			"p.action_type":  actionType,
			"p.status": []domain.ProposalStatus{
				domain.ProposalStatusProposed,
				domain.ProposalStatusApproved,
				domain.ProposalStatusExecuted,
			},
		}).
		Where(squirrel.GtOrEq{"p.created_at": since}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	err = r.conn.QueryRow(query, args...).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("erro ao escanear contagem de propostas: %w", err)
	}

	return count > 0, nil
}

func (r *proposalRepository) SetStatus(id string, status domain.ProposalStatus, actor *string) error {
	builder := squirrel.
		Update(proposalsTable).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if status == domain.ProposalStatusApproved {
		builder = builder.
			Set("approved_by", actor).
			Set("approved_at", squirrel.Expr("NOW()"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrProposalNotFound
	}

	return nil
}

// SetResult finaliza a proposta após a execução: executed com o resultado
// estruturado, ou failed com o erro textual.
func (r *proposalRepository) SetResult(id string, status domain.ProposalStatus, result map[string]any, execError *string) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("erro ao serializar result para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(proposalsTable).
		Set("status", status).
		Set("result", resultJSON).
		Set("error", execError).
		Set("executed_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	affectedResult, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := affectedResult.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrProposalNotFound
	}

	return nil
}

func (r *proposalRepository) AttachTelegramMessage(id string, chatID, messageID int64) error {
	query, args, err := squirrel.
		Update(proposalsTable).
		Set("telegram_chat_id", chatID).
		Set("telegram_message_id", messageID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func scanProposal(row rowScanner) (*domain.ActionProposal, error) {
	proposal := &domain.ActionProposal{}
	var payloadJSON, resultJSON []byte

	err := row.Scan(
		&proposal.ID,
		&proposal.CreatedAt,
		&proposal.UpdatedAt,
		&proposal.Status,
		&proposal.Platform,
		&proposal.ConnectorID,
		&proposal.ActionType,
		&proposal.AccountID,
		&proposal.EntityType,
		&proposal.EntityID,
		&payloadJSON,
		&proposal.Reason,
		&proposal.Risk,
		&proposal.RequiresApproval,
		&proposal.ApprovedBy,
		&proposal.ApprovedAt,
		&proposal.ExecutedAt,
		&resultJSON,
		&proposal.Error,
		&proposal.TelegramChatID,
		&proposal.TelegramMessageID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao escanear action_proposals: %w", err)
	}

	if payloadJSON != nil {
		if err := json.Unmarshal(payloadJSON, &proposal.Payload); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de payload: %w", err)
		}
	}
	if resultJSON != nil {
		if err := json.Unmarshal(resultJSON, &proposal.Result); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de result: %w", err)
		}
	}

	return proposal, nil
}
