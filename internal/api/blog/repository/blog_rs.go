package blogRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/internal/entity"
	contextPkg "github.com/bennettbwalter-dot/emergency-tradesmen-v2-sub000/pkg/context"
)

type BlogDB struct {
	ID           sql.NullString `db:"id"`
	Title        sql.NullString `db:"title"`
	Body         sql.NullString `db:"body"`
	ImageURL     sql.NullString `db:"image_url"`
	Author       sql.NullString `db:"author"`
	BlogCategory sql.NullString `db:"blog_category"`
	TradeSlug    sql.NullString `db:"trade_slug"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            blog.ID,
		"title":         blog.Title,
		"body":          blog.Body,
		"image_url":     blog.ImageURL,
		"author":        blog.Author,
		"blog_category": blog.BlogCategory,
		"trade_slug":    blog.TradeSlug,
		"created_at":    blog.CreatedAt,
		"updated_at":    blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BlogDB

	query, args, err := sqlx.Named(queryGetBlogByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	if len(rows) == 0 {
		return entity.Blog{}, sql.ErrNoRows
	}

	return makeBlog(rows[0]), nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetAllBlogs, queryCountAllBlogs, map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	})
}

func (r *blogsRepository) GetBlogsByCategory(ctx context.Context, category string, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetBlogsByCategory, queryCountBlogsByCategory, map[string]interface{}{
		"blog_category": category,
		"limit":         limit,
		"offset":        offset,
	})
}

func (r *blogsRepository) GetBlogsByTrade(ctx context.Context, tradeSlug string, limit, offset int) ([]entity.Blog, int, error) {
	return r.listBlogs(ctx, queryGetBlogsByTrade, queryCountBlogsByTrade, map[string]interface{}{
		"trade_slug": tradeSlug,
		"limit":      limit,
		"offset":     offset,
	})
}

// listBlogs runs a paged select plus its companion count query. The count
// query reuses the same named args minus limit and offset, which sqlx
// ignores when the query does not reference them.
func (r *blogsRepository) listBlogs(ctx context.Context, listQuery, countQuery string, argsKV map[string]interface{}) ([]entity.Blog, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BlogDB
	var total int

	countKV := make(map[string]interface{}, len(argsKV))
	for k, v := range argsKV {
		if k == "limit" || k == "offset" {
			continue
		}
		countKV[k] = v
	}

	cq, cargs, err := sqlx.Named(countQuery, countKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Blog count named query preparation err")
		return nil, 0, err
	}
	cq = r.q.Rebind(cq)

	if err := r.q.QueryRowxContext(ctx, cq, cargs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Blog count execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(listQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Blog list named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Blog list execution err")
		return nil, 0, err
	}

	blogList := make([]entity.Blog, 0, len(rows))
	for _, row := range rows {
		blogList = append(blogList, makeBlog(row))
	}

	return blogList, total, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            blog.ID,
		"title":         blog.Title,
		"body":          blog.Body,
		"image_url":     blog.ImageURL,
		"blog_category": blog.BlogCategory,
		"trade_slug":    blog.TradeSlug,
		"updated_at":    blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteBlog, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting blog")
		return err
	}

	return nil
}

func makeBlog(row BlogDB) entity.Blog {
	return entity.Blog{
		ID:           row.ID.String,
		Title:        row.Title.String,
		Body:         row.Body.String,
		ImageURL:     row.ImageURL.String,
		Author:       row.Author.String,
		BlogCategory: row.BlogCategory.String,
		TradeSlug:    row.TradeSlug.String,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
