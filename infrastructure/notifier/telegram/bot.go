package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/executing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/proposing"
)

const offsetKey = "telegram:offset"

// Bot é o poller de comandos: processa botões de aprovar/rejeitar e os
// comandos /pending, /status e /execute. Apenas um chat é atendido; sem chat
// configurado, o primeiro que falar com o bot fica travado como dono.
type Bot struct {
	cfg           *config.Config
	client        *client
	proposer      proposing.Proposer
	executor      executing.Executor
	syncStateRepo repository.SyncStateRepository
}

func NewBot(
	cfg *config.Config,
	proposer proposing.Proposer,
	executor executing.Executor,
	syncStateRepo repository.SyncStateRepository,
) *Bot {
	return &Bot{
		cfg:           cfg,
		client:        newClient(cfg),
		proposer:      proposer,
		executor:      executor,
		syncStateRepo: syncStateRepo,
	}
}

// Start roda o loop de polling até o contexto ser cancelado.
func (b *Bot) Start(ctx context.Context) {
	if b.cfg.Telegram.BotToken == "" {
		logrus.Info("Bot do Telegram sem token configurado, poller desligado")
		return
	}

	logrus.Info("Poller do Telegram iniciado")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Poller do Telegram encerrado")
			return
		default:
		}

		offset, err := b.loadOffset()
		if err != nil {
			logrus.WithError(err).Warn("Erro ao ler o offset do Telegram, recomeçando do zero")
			offset = 0
		}

		updates, err := b.client.getUpdates(ctx, offset)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logrus.WithError(err).Warn("Erro ao buscar atualizações do Telegram")
			time.Sleep(5 * time.Second)
			continue
		}

		for _, upd := range updates {
			b.handleUpdate(ctx, upd)

			// O cursor avança por atualização processada; um crash repete no
			// máximo a última.
			if err := b.syncStateRepo.Set(offsetKey, strconv.FormatInt(upd.UpdateID+1, 10)); err != nil {
				logrus.WithError(err).Warn("Erro ao gravar o offset do Telegram")
			}
		}
	}
}

func (b *Bot) loadOffset() (int64, error) {
	raw, err := b.syncStateRepo.Get(offsetKey)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	return strconv.ParseInt(*raw, 10, 64)
}

// allowedChat valida o remetente e trava o chat na primeira conversa quando
// não há chat configurado.
func (b *Bot) allowedChat(chatID int64) bool {
	if b.cfg.Telegram.AllowedChatID != 0 {
		return chatID == b.cfg.Telegram.AllowedChatID
	}

	raw, err := b.syncStateRepo.Get(boundChatKey)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler o chat vinculado")
		return false
	}
	if raw == nil {
		if err := b.syncStateRepo.Set(boundChatKey, strconv.FormatInt(chatID, 10)); err != nil {
			logrus.WithError(err).Warn("Erro ao vincular o chat")
			return false
		}
		logrus.WithField("chat_id", chatID).Info("Chat vinculado ao bot")
		return true
	}

	bound, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return false
	}
	return chatID == bound
}

func (b *Bot) handleUpdate(ctx context.Context, upd update) {
	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(ctx, upd.CallbackQuery)
	case upd.Message != nil:
		b.handleMessage(ctx, upd.Message)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *callbackQuery) {
	if cb.Message == nil || !b.allowedChat(cb.Message.Chat.ID) {
		return
	}

	actor := cb.From.Username
	if actor == "" {
		actor = cb.From.FirstName
	}
	actor = "telegram:" + actor

	verb, proposalID, found := strings.Cut(cb.Data, ":")
	if !found {
		return
	}

	var feedback string
	switch verb {
	case "approve":
		proposal, err := b.proposer.Approve(proposalID, actor)
		if err != nil {
			feedback = "Erro: " + err.Error()
			break
		}
		feedback = "Proposta aprovada"

		// Aprovar pelo botão também executa: o operador já decidiu.
		if _, err := b.executor.Execute(ctx, proposal.ID, actor); err != nil {
			feedback = "Aprovada, mas a execução falhou: " + err.Error()
		} else {
			feedback = "Proposta aprovada e executada"
		}
	case "reject":
		if _, err := b.proposer.Reject(proposalID, actor); err != nil {
			feedback = "Erro: " + err.Error()
		} else {
			feedback = "Proposta rejeitada"
		}
	default:
		return
	}

	if err := b.client.answerCallback(ctx, cb.ID, feedback); err != nil {
		logrus.WithError(err).Warn("Erro ao responder o callback do Telegram")
	}

	b.refreshMessage(ctx, cb.Message.Chat.ID, cb.Message.MessageID, proposalID, feedback)
}

// refreshMessage troca o texto da mensagem original pela decisão tomada,
// removendo os botões.
func (b *Bot) refreshMessage(ctx context.Context, chatID, messageID int64, proposalID, feedback string) {
	proposal, err := b.proposer.GetProposal(proposalID)
	if err != nil {
		return
	}

	text := formatProposal(proposal) + fmt.Sprintf("\n\n<b>%s</b> — estado: %s", feedback, proposal.Status)
	if err := b.client.editMessageText(ctx, chatID, messageID, text); err != nil {
		logrus.WithError(err).Warn("Erro ao atualizar a mensagem da proposta")
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *message) {
	if !b.allowedChat(msg.Chat.ID) {
		return
	}

	command, arg, _ := strings.Cut(strings.TrimSpace(msg.Text), " ")
	switch command {
	case "/pending":
		b.replyPending(ctx, msg.Chat.ID)
	case "/status":
		b.replyStatus(ctx, msg.Chat.ID, strings.TrimSpace(arg))
	case "/execute":
		b.replyExecute(ctx, msg, strings.TrimSpace(arg))
	case "/start", "/help":
		text := "Comandos:\n/pending — propostas pendentes\n/status &lt;id&gt; — detalhe de uma proposta\n/execute &lt;id&gt; — executar uma proposta aprovada"
		if _, err := b.client.sendMessage(ctx, msg.Chat.ID, text, nil); err != nil {
			logrus.WithError(err).Warn("Erro ao responder /help")
		}
	}
}

func (b *Bot) replyPending(ctx context.Context, chatID int64) {
	proposals, err := b.proposer.ListPending()
	if err != nil {
		b.reply(ctx, chatID, "Erro ao listar propostas pendentes: "+err.Error())
		return
	}

	if len(proposals) == 0 {
		b.reply(ctx, chatID, "Nenhuma proposta pendente")
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<b>%d proposta(s) pendente(s)</b>\n", len(proposals))
	for _, p := range proposals {
		fmt.Fprintf(&sb, "\n<code>%s</code> — %s %s em %s\n%s\n", p.ID, p.ActionType, p.EntityID, p.Platform, p.Reason)
	}
	b.reply(ctx, chatID, sb.String())
}

func (b *Bot) replyStatus(ctx context.Context, chatID int64, proposalID string) {
	if proposalID == "" {
		b.reply(ctx, chatID, "Uso: /status <id>")
		return
	}

	proposal, err := b.proposer.GetProposal(proposalID)
	if err != nil {
		b.reply(ctx, chatID, "Erro: "+err.Error())
		return
	}

	text := formatProposal(proposal) + fmt.Sprintf("\n\nEstado: <b>%s</b>", proposal.Status)
	if proposal.Error != nil {
		text += "\nErro: " + *proposal.Error
	}
	b.reply(ctx, chatID, text)
}

func (b *Bot) replyExecute(ctx context.Context, msg *message, proposalID string) {
	if proposalID == "" {
		b.reply(ctx, msg.Chat.ID, "Uso: /execute <id>")
		return
	}

	actor := "telegram"
	if msg.From != nil && msg.From.Username != "" {
		actor = "telegram:" + msg.From.Username
	}

	proposal, err := b.executor.Execute(ctx, proposalID, actor)
	if err != nil {
		var execErr *executing.ExecutionError
		if errors.As(err, &execErr) {
			b.reply(ctx, msg.Chat.ID, "Execução falhou ("+execErr.Stage+"): "+execErr.Error())
			return
		}
		b.reply(ctx, msg.Chat.ID, "Execução falhou: "+err.Error())
		return
	}

	b.reply(ctx, msg.Chat.ID, fmt.Sprintf("Proposta <code>%s</code> executada: %s", proposal.ID, proposal.Status))
}

func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	if _, err := b.client.sendMessage(ctx, chatID, text, nil); err != nil {
		logrus.WithError(err).Warn("Erro ao enviar resposta no Telegram")
	}
}
