package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

const boundChatKey = "telegram:chat"

// Notifier envia propostas novas ao chat do Telegram com botões de decisão.
type Notifier struct {
	cfg           *config.Config
	client        *client
	proposalRepo  repository.ProposalRepository
	syncStateRepo repository.SyncStateRepository
}

func NewNotifier(
	cfg *config.Config,
	proposalRepo repository.ProposalRepository,
	syncStateRepo repository.SyncStateRepository,
) *Notifier {
	return &Notifier{
		cfg:           cfg,
		client:        newClient(cfg),
		proposalRepo:  proposalRepo,
		syncStateRepo: syncStateRepo,
	}
}

// Enabled informa se o bot tem token configurado.
func (n *Notifier) Enabled() bool {
	return n.cfg.Telegram.BotToken != ""
}

// chatID resolve o chat de destino: o configurado, ou o travado pela
// primeira conversa quando a configuração não fixa um.
func (n *Notifier) chatID() (int64, error) {
	if n.cfg.Telegram.AllowedChatID != 0 {
		return n.cfg.Telegram.AllowedChatID, nil
	}

	raw, err := n.syncStateRepo.Get(boundChatKey)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, fmt.Errorf("nenhum chat vinculado ao bot ainda")
	}

	return strconv.ParseInt(*raw, 10, 64)
}

// NotifyProposal envia a proposta com botões de aprovar/rejeitar e guarda a
// correlação chat/mensagem na proposta, para editar a mensagem na decisão.
func (n *Notifier) NotifyProposal(ctx context.Context, proposal *domain.ActionProposal) error {
	if !n.Enabled() {
		return nil
	}

	chatID, err := n.chatID()
	if err != nil {
		return fmt.Errorf("erro ao resolver o chat de destino: %w", err)
	}

	text := formatProposal(proposal)
	keyboard := &inlineKeyboardMarkup{
		InlineKeyboard: [][]inlineKeyboardButton{{
			{Text: "✅ Aprovar", CallbackData: "approve:" + proposal.ID},
			{Text: "❌ Rejeitar", CallbackData: "reject:" + proposal.ID},
		}},
	}

	sent, err := n.client.sendMessage(ctx, chatID, text, keyboard)
	if err != nil {
		return fmt.Errorf("erro ao enviar a proposta ao Telegram: %w", err)
	}

	if err := n.proposalRepo.AttachTelegramMessage(proposal.ID, sent.Chat.ID, sent.MessageID); err != nil {
		logrus.WithError(err).WithField("proposal_id", proposal.ID).Warn("Erro ao correlacionar a mensagem do Telegram")
	}

	return nil
}

// NotifyExecuted avisa o chat sobre uma execução concluída (manual ou
// automática).
func (n *Notifier) NotifyExecuted(ctx context.Context, proposal *domain.ActionProposal) error {
	if !n.Enabled() {
		return nil
	}

	chatID, err := n.chatID()
	if err != nil {
		return err
	}

	text := fmt.Sprintf(
		"⚡ <b>Ação executada</b>\n%s\n<b>%s</b> em <code>%s</code> (%s)",
		proposal.Reason, proposal.ActionType, proposal.EntityID, proposal.Platform,
	)
	_, err = n.client.sendMessage(ctx, chatID, text, nil)
	return err
}

func formatProposal(proposal *domain.ActionProposal) string {
	return fmt.Sprintf(
		"🚨 <b>Proposta %s</b>\n"+
			"Plataforma: <b>%s</b>\n"+
			"Ação: <b>%s</b> em <code>%s</code> (%s)\n"+
			"Motivo: %s\n"+
			"Risco: %s",
		proposal.ID,
		proposal.Platform,
		proposal.ActionType,
		proposal.EntityID,
		proposal.EntityType,
		proposal.Reason,
		proposal.Risk,
	)
}
