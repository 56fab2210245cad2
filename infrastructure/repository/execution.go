package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

const (
	executionsTable = "executions"

	executionColumns = "e.id, e.proposal_id, e.started_at, e.finished_at, e.status, e.before, e.after, e.error"
)

var ErrExecutionNotFound = fmt.Errorf("execução não encontrada")

// ExecutionFilters restringe a listagem de execuções.
type ExecutionFilters struct {
	Status *domain.ExecutionStatus
	Limit  uint64
}

type ExecutionRepository interface {
	Create(execution *domain.Execution) error
	Finish(id string, status domain.ExecutionStatus, before, after map[string]any, execError *string) error
	ListByProposal(proposalID string) ([]*domain.Execution, error)
	List(filters ExecutionFilters) ([]*domain.Execution, error)
}

type executionRepository struct {
	conn *postgres.Connection
}

func NewExecutionRepository(conn *postgres.Connection) ExecutionRepository {
	return &executionRepository{
		conn: conn,
	}
}

// Create grava a linha em running, antes de qualquer chamada ao conector.
func (r *executionRepository) Create(execution *domain.Execution) error {
	query := squirrel.StatementBuilder.
		Insert(executionsTable).
		Columns("id", "proposal_id", "status").
		Values(execution.ID, execution.ProposalID, domain.ExecutionStatusRunning).
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

func (r *executionRepository) Finish(
	id string,
	status domain.ExecutionStatus,
	before, after map[string]any,
	execError *string,
) error {
	beforeJSON, err := json.Marshal(before)
	if err != nil {
		return fmt.Errorf("erro ao serializar before para JSON: %w", err)
	}
	afterJSON, err := json.Marshal(after)
	if err != nil {
		return fmt.Errorf("erro ao serializar after para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(executionsTable).
		Set("status", status).
		Set("before", beforeJSON).
		Set("after", afterJSON).
		Set("error", execError).
		Set("finished_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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
		return ErrExecutionNotFound
	}

	return nil
}

func (r *executionRepository) ListByProposal(proposalID string) ([]*domain.Execution, error) {
	return r.listWith(squirrel.
		Select(executionColumns).
		From(executionsTable + " e").
		Where(squirrel.Eq{"e.proposal_id": proposalID}).
		OrderBy("e.started_at"))
}

func (r *executionRepository) List(filters ExecutionFilters) ([]*domain.Execution, error) {
	builder := squirrel.
		Select(executionColumns).
		From(executionsTable + " e").
		OrderBy("e.started_at DESC")

	if filters.Status != nil {
		builder = builder.Where(squirrel.Eq{"e.status": *filters.Status})
	}
	if filters.Limit > 0 {
		builder = builder.Limit(filters.Limit)
	}

	return r.listWith(builder)
}

func (r *executionRepository) listWith(builder squirrel.SelectBuilder) ([]*domain.Execution, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
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

	executions := make([]*domain.Execution, 0)
	for rows.Next() {
		execution := &domain.Execution{}
		var beforeJSON, afterJSON []byte

		err := rows.Scan(
			&execution.ID,
			&execution.ProposalID,
			&execution.StartedAt,
			&execution.FinishedAt,
			&execution.Status,
			&beforeJSON,
			&afterJSON,
			&execution.Error,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear executions: %w", err)
		}

		if beforeJSON != nil {
			if err := json.Unmarshal(beforeJSON, &execution.Before); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de before: %w", err)
			}
		}
		if afterJSON != nil {
			if err := json.Unmarshal(afterJSON, &execution.After); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de after: %w", err)
			}
		}

		executions = append(executions, execution)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return executions, nil
}
