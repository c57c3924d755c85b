// 带缓存的http Get下载，命中缓存时不发起请求
// 失败时不重试，通过PageInfo.State返回给调用方
package downloader

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/andrewyi/pyparser/src/dbstorage"
	"github.com/andrewyi/pyparser/src/dbstorage/schema"
	"github.com/andrewyi/pyparser/src/entity"
	"github.com/andrewyi/pyparser/src/enum"
)

type SimpleDownloader struct {
	ctx         context.Context
	logger      *log.Logger
	expireAfter time.Duration

	client *resty.Client
	cache  dbstorage.DBStorage // nil表示不使用缓存
}

type Options struct {
	Timeout     uint32 // seconds
	UserAgent   string
	ExpireAfter uint32 // seconds, 0表示永不过期
}

func NewSimpleDownloader(ctx context.Context, opts Options, cache dbstorage.DBStorage, logger *log.Logger) Downloader {
	client := resty.New()
	client.SetTimeout(time.Duration(opts.Timeout) * time.Second)
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &SimpleDownloader{
		ctx:         ctx,
		logger:      logger,
		expireAfter: time.Duration(opts.ExpireAfter) * time.Second,
		client:      client,
		cache:       cache,
	}
}

func (s *SimpleDownloader) Download(url string) entity.PageInfo {
	if page, ok := s.fromCache(url); ok {
		return page
	}

	resp, err := s.client.R().
		SetContext(s.ctx).
		Get(url)
	if err != nil {
		return entity.PageInfo{
			URL:    url,
			State:  enum.PageStateFail,
			Remark: err.Error(),
		}
	}
	if resp.IsError() {
		return entity.PageInfo{
			URL:    url,
			State:  enum.PageStateFail,
			Remark: fmt.Sprintf("unexpected status %s", resp.Status()),
		}
	}

	if s.cache != nil {
		err = s.cache.SaveResponse(&schema.Response{
			URL:        url,
			StatusCode: resp.StatusCode(),
			Content:    resp.Body(),
			FetchedAt:  time.Now(),
		})
		if err != nil {
			// 非致命错误，下次重新下载即可
			s.logger.WithError(err).WithField("url", url).Warn("fail to save response into cache")
		}
	}

	return entity.PageInfo{
		URL:     url,
		State:   enum.PageStateSuccess,
		Content: string(resp.Body()),
	}
}

func (s *SimpleDownloader) fromCache(url string) (entity.PageInfo, bool) {
	if s.cache == nil {
		return entity.PageInfo{}, false
	}

	cached, err := s.cache.GetResponse(url)
	if err != nil {
		if err != dbstorage.ErrDataNotExist {
			s.logger.WithError(err).WithField("url", url).Warn("fail to read response from cache")
		}
		return entity.PageInfo{}, false
	}
	if s.expireAfter > 0 && time.Since(cached.FetchedAt) > s.expireAfter {
		return entity.PageInfo{}, false
	}

	s.logger.WithField("url", url).Debug("cache hit")
	return entity.PageInfo{
		URL:       url,
		State:     enum.PageStateSuccess,
		Content:   string(cached.Content),
		FromCache: true,
	}, true
}
