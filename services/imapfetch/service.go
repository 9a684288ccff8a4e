package imapfetch

import (
	"context"
	"net"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/jhillyerd/enmime"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/customeros/unsublink/interfaces"
	apperrors "github.com/customeros/unsublink/internal/errors"
	"github.com/customeros/unsublink/internal/logger"
	"github.com/customeros/unsublink/internal/models"
	"github.com/customeros/unsublink/internal/tracing"
	"github.com/customeros/unsublink/internal/utils"
)

type Config struct {
	Server      string `env:"IMAP_SERVER"`
	Port        string `env:"IMAP_PORT" envDefault:"993"`
	Username    string `env:"IMAP_USERNAME"`
	Password    string `env:"IMAP_PASSWORD"`
	InboxFolder string `env:"IMAP_INBOX_FOLDER" envDefault:"INBOX"`
	SentFolder  string `env:"IMAP_SENT_FOLDER" envDefault:"Sent Mail"`
}

type imapMessageProvider struct {
	cfg *Config
	log logger.Logger
}

// NewIMAPMessageProvider returns a MessageProvider that locates a message by
// its Message-Id over IMAP and materializes its headers and HTML body.
func NewIMAPMessageProvider(cfg *Config, log logger.Logger) interfaces.MessageProvider {
	return &imapMessageProvider{cfg: cfg, log: log}
}

func (s *imapMessageProvider) FetchMessage(ctx context.Context, mailboxID, messageID string) (*models.Message, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "imapMessageProvider.FetchMessage")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)
	tracing.TagMessage(span, messageID)
	tracing.TagMailbox(span, mailboxID)

	messageID = utils.NormalizeMessageID(messageID)

	c, err := client.DialTLS(net.JoinHostPort(s.cfg.Server, s.cfg.Port), nil)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "dial imap server")
	}
	defer c.Logout()

	if err := c.Login(s.cfg.Username, s.cfg.Password); err != nil {
		tracing.TraceErr(span, err)
		return nil, errors.Wrap(err, "imap login")
	}

	// Look in the inbox first; the sent folder only to recognize the
	// message as the account's own outgoing mail.
	for _, folder := range []string{s.cfg.InboxFolder, s.cfg.SentFolder} {
		raw, err := s.findInFolder(c, folder, messageID)
		if err != nil {
			tracing.TraceErr(span, err)
			return nil, err
		}
		if raw == nil {
			continue
		}
		span.SetTag("folder", folder)
		return s.materialize(mailboxID, folder, messageID, raw)
	}

	tracing.TraceErr(span, apperrors.ErrMessageNotFound)
	return nil, apperrors.ErrMessageNotFound
}

func (s *imapMessageProvider) findInFolder(c *client.Client, folder, messageID string) (*imap.Message, error) {
	_, err := c.Select(folder, true) // read-only
	if err != nil {
		return nil, errors.Wrapf(err, "select folder %s", folder)
	}

	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("Message-Id", messageID)

	uids, err := c.Search(criteria)
	if err != nil {
		return nil, errors.Wrapf(err, "search folder %s", folder)
	}
	if len(uids) == 0 {
		return nil, nil
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uids[0])

	items := []imap.FetchItem{
		imap.FetchEnvelope,
		imap.FetchFlags,
		imap.FetchUid,
		imap.FetchRFC822,
	}

	messages := make(chan *imap.Message, 1)
	if err := c.Fetch(seqSet, items, messages); err != nil {
		return nil, errors.Wrapf(err, "fetch message in folder %s", folder)
	}

	msg, ok := <-messages
	if !ok {
		return nil, errors.Errorf("no fetch response for message in folder %s", folder)
	}
	return msg, nil
}

func (s *imapMessageProvider) materialize(mailboxID, folder, messageID string, raw *imap.Message) (*models.Message, error) {
	if folder == s.cfg.SentFolder {
		return nil, apperrors.ErrSentMailNotApplicable
	}
	for _, flag := range raw.Flags {
		if flag == imap.DraftFlag {
			return nil, apperrors.ErrDraftNotSupported
		}
	}

	literal := raw.GetBody(&imap.BodySectionName{})
	if literal == nil {
		return nil, apperrors.ErrNoMessageContent
	}

	envelope, err := enmime.ReadEnvelope(literal)
	if err != nil {
		return nil, errors.Wrap(err, "parse raw message")
	}

	headers := make(map[string]string)
	for _, key := range envelope.GetHeaderKeys() {
		headers[key] = envelope.GetHeader(key)
	}

	return &models.Message{
		ID:        messageID,
		MailboxID: mailboxID,
		Subject:   envelope.GetHeader("Subject"),
		From:      envelope.GetHeader("From"),
		Headers:   headers,
		BodyHTML:  envelope.HTML,
		Category:  folder,
	}, nil
}
