package controller

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/pyparser/src/analyzer"
	"github.com/andrewyi/pyparser/src/config"
	"github.com/andrewyi/pyparser/src/downloader"
	"github.com/andrewyi/pyparser/src/entity"
	"github.com/andrewyi/pyparser/src/enum"
	"github.com/andrewyi/pyparser/src/filestorage"
	"github.com/andrewyi/pyparser/src/util"
)

type SimpleController struct {
	logger *log.Logger
	cfg    *config.Config

	downloader downloader.Downloader
	downloads  filestorage.FileStorage
	progress   io.Writer // nil时不展示进度
}

func NewSimpleController(
	cfg *config.Config, d downloader.Downloader,
	downloads filestorage.FileStorage, progress io.Writer, logger *log.Logger) Controller {

	return &SimpleController{
		logger:     logger,
		cfg:        cfg,
		downloader: d,
		downloads:  downloads,
		progress:   progress,
	}
}

func (c *SimpleController) Process(mode enum.Mode) (entity.Table, error) {
	switch mode {
	case enum.ModeWhatsNew:
		return c.whatsNew()
	case enum.ModeLatestVersions:
		return c.latestVersions()
	case enum.ModeDownload:
		return nil, c.download()
	case enum.ModePep:
		return c.pep()
	}
	return nil, fmt.Errorf("unsupported mode %s", mode)
}

// 下载并解析页面，失败时记录日志并返回nil
func (c *SimpleController) fetch(url string) *goquery.Document {
	page := c.downloader.Download(url)
	doc, err := analyzer.Parse(page)
	if err != nil {
		c.logger.WithError(err).WithField("url", url).Error("fail to fetch page")
		return nil
	}
	return doc
}

func (c *SimpleController) whatsNew() (entity.Table, error) {
	whatsNewURL, err := util.ResolveURL(c.cfg.Site.MainDocURL, "whatsnew/")
	if err != nil {
		return nil, err
	}
	doc := c.fetch(whatsNewURL)
	if doc == nil {
		return nil, nil
	}

	links, err := analyzer.ParseWhatsNewLinks(doc, whatsNewURL)
	if err != nil {
		return nil, err
	}

	var items []entity.ListItem
	bar := newTracker(c.progress, "whats-new", len(links))
	defer bar.Done()
	for _, link := range links {
		bar.Increment()

		// 默认仍然抓取whats-new首页，因此所有标题相同
		titleURL := whatsNewURL
		if c.cfg.WhatsNew.FollowLinks {
			titleURL = link
		}
		titleDoc := c.fetch(titleURL)
		if titleDoc == nil {
			continue
		}
		title, err := analyzer.ParseTitle(titleDoc)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.ListItem{URL: link, Title: title})
	}

	return entity.ListItemTable(items), nil
}

func (c *SimpleController) latestVersions() (entity.Table, error) {
	doc := c.fetch(c.cfg.Site.MainDocURL)
	if doc == nil {
		return nil, nil
	}

	versions, err := analyzer.ParseVersions(doc)
	if err != nil {
		return nil, err
	}
	return entity.VersionEntryTable(versions), nil
}

func (c *SimpleController) download() error {
	downloadsURL, err := util.ResolveURL(c.cfg.Site.MainDocURL, "download.html")
	if err != nil {
		return err
	}
	doc := c.fetch(downloadsURL)
	if doc == nil {
		return nil
	}

	archiveURL, err := analyzer.ParseArchiveLink(doc, downloadsURL)
	if err != nil {
		return err
	}

	page := c.downloader.Download(archiveURL)
	if page.State != enum.PageStateSuccess {
		c.logger.WithField("url", archiveURL).WithField("remark", page.Remark).Error("fail to download archive")
		return nil
	}

	fileName, err := util.FileNameFromURL(archiveURL)
	if err != nil {
		return err
	}
	archivePath, err := c.downloads.Store(fileName, []byte(page.Content))
	if err != nil {
		return fmt.Errorf("fail to store archive: %w", err)
	}

	c.logger.WithField("path", archivePath).Info("archive downloaded")
	return nil
}

func (c *SimpleController) pep() (entity.Table, error) {
	peps, ok, err := c.parseTables()
	if err != nil || !ok {
		return nil, err
	}

	statuses, err := c.checkStatus(peps)
	if err != nil {
		return nil, err
	}

	return entity.CountStatuses(statuses).Table(), nil
}

// 首页下载失败时ok为false
func (c *SimpleController) parseTables() (peps []entity.PepEntry, ok bool, err error) {
	doc := c.fetch(c.cfg.Site.PepDocURL)
	if doc == nil {
		return nil, false, nil
	}

	peps, err = analyzer.ParsePepTables(doc, c.cfg.Site.PepDocURL, analyzer.SpecialPep{
		Number: c.cfg.Site.SpecialPep,
		Label:  c.cfg.Site.SpecialPepStatus,
	})
	return peps, err == nil, err
}

// checkStatus 将每个PEP页面上的状态与汇总表中声明的状态比对
// 不一致只记录日志；返回的是PEP页面上的状态
func (c *SimpleController) checkStatus(peps []entity.PepEntry) ([]string, error) {
	statuses := make([]string, 0, len(peps))
	c.logger.Info("checking pep statuses")

	bar := newTracker(c.progress, "pep", len(peps))
	defer bar.Done()
	for _, pep := range peps {
		bar.Increment()

		expected, err := analyzer.NormalizeLabel(pep.Label)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pep.URL, err)
		}

		doc := c.fetch(pep.URL)
		if doc == nil {
			continue
		}
		card, err := analyzer.ParsePepCard(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pep.URL, err)
		}

		statuses = append(statuses, card.Status)

		if !util.StringSliceEqual(card.Pair(), expected.Pair()) {
			c.logger.WithFields(log.Fields{
				"url":      pep.URL,
				"card":     card.Pair(),
				"expected": expected.Pair(),
			}).Info("status mismatch")
		}
	}
	return statuses, nil
}
