package blogRepository

const (
	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			body,
			image_url,
			author,
			blog_category,
			trade_slug,
			created_at,
			updated_at
		) VALUES (
			:id,
			:title,
			:body,
			:image_url,
			:author,
			:blog_category,
			:trade_slug,
			:created_at,
			:updated_at
		)
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			body,
			image_url,
			author,
			blog_category,
			trade_slug,
			created_at,
			updated_at
		FROM blogs
		WHERE id = :id
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			body,
			image_url,
			author,
			blog_category,
			trade_slug,
			created_at,
			updated_at
		FROM blogs
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllBlogs = `
		SELECT COUNT(*)
		FROM blogs
	`

	queryGetBlogsByCategory = `
		SELECT
			id,
			title,
			body,
			image_url,
			author,
			blog_category,
			trade_slug,
			created_at,
			updated_at
		FROM blogs
		WHERE blog_category = :blog_category
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByCategory = `
		SELECT COUNT(*)
		FROM blogs
		WHERE blog_category = :blog_category
	`

	queryGetBlogsByTrade = `
		SELECT
			id,
			title,
			body,
			image_url,
			author,
			blog_category,
			trade_slug,
			created_at,
			updated_at
		FROM blogs
		WHERE trade_slug = :trade_slug
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountBlogsByTrade = `
		SELECT COUNT(*)
		FROM blogs
		WHERE trade_slug = :trade_slug
	`

	queryUpdateBlog = `
		UPDATE blogs
		SET
			title = :title,
			body = :body,
			image_url = :image_url,
			blog_category = :blog_category,
			trade_slug = :trade_slug,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteBlog = `
		DELETE FROM blogs
		WHERE id = :id
	`

	queryGetCategoryByID = `
		SELECT
			id,
			name,
			created_at
		FROM blog_categories
		WHERE id = :id
	`

	queryGetAllCategories = `
		SELECT
			id,
			name,
			created_at
		FROM blog_categories
		ORDER BY name ASC
	`
)
