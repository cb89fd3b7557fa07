package main

import (
	"github.com/ayxworxfr/go_admin_client/internal/constants"
	"github.com/ayxworxfr/go_admin_client/internal/domain/params"
	"github.com/ayxworxfr/go_admin_client/internal/domain/types"
	"github.com/ayxworxfr/go_admin_client/internal/domain/vo"
	"github.com/ayxworxfr/go_admin_client/internal/service"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// PageFlags 分页参数
type PageFlags struct {
	Page int `help:"Page number." default:"1"`
	Size int `help:"Page size." default:"10"`
}

func (p PageFlags) params() params.CommonSearchParams {
	return params.NewPage(p.Page, p.Size)
}

type LoginCmd struct{}

func (c *LoginCmd) Run(rt *Runtime) error {
	app, err := rt.App()
	if err != nil {
		return err
	}
	session := app.Session()
	out := map[string]any{"expiresAt": session.ExpiresAt(), "expired": session.Expired()}
	if claims := session.Claims(); claims != nil {
		out["userId"] = claims.UserID()
		out["userName"] = claims.Nice
		out["roleKey"] = claims.RoleKey
	}
	return rt.Print(out)
}

type ProfileCmd struct {
	Permissions bool `help:"Also list the user's permissions."`
}

func (c *ProfileCmd) Run(rt *Runtime) error {
	if _, err := rt.App(); err != nil {
		return err
	}
	profile, err := service.AuthServiceInstance.Profile(rt.ctx)
	if err != nil {
		return err
	}
	if !c.Permissions {
		return rt.Print(profile)
	}
	perms, err := service.AuthServiceInstance.Permissions(rt.ctx)
	if err != nil {
		return err
	}
	return rt.Print(map[string]any{"profile": profile, "permissions": perms})
}

type UsersCmd struct {
	List UsersListCmd `cmd:"" help:"List users."`
}

type UsersListCmd struct {
	PageFlags `embed:""`
	UserName  string `help:"Filter by user name." name:"user-name"`
	Email     string `help:"Filter by email."`
	Status    int    `help:"Filter by status (1 enabled, 2 disabled)."`
}

// UserRow 用户列表的输出行
type UserRow struct {
	ID       string
	UserName string
	NickName string
	Email    string
	Status   types.EnableStatus
	RoleIDs  []string
}

func (c *UsersListCmd) Run(rt *Runtime) error {
	status := types.EnableStatus(c.Status)
	if c.Status != 0 && !status.Valid() {
		return errors.Errorf("invalid status %d", c.Status)
	}
	if _, err := rt.App(); err != nil {
		return err
	}
	page, err := service.UserServiceInstance.List(rt.ctx, &params.UserSearchParams{
		CommonSearchParams: c.params(),
		UserName:           lo.EmptyableToPtr(c.UserName),
		Email:              lo.EmptyableToPtr(c.Email),
		Status:             lo.EmptyableToPtr(status),
	})
	if err != nil {
		return err
	}
	var rows []UserRow
	if err := copier.Copy(&rows, &page.Records); err != nil {
		return errors.Wrap(err, "copy user rows")
	}
	return rt.Print(vo.Page[UserRow]{Current: page.Current, Size: page.Size, Total: page.Total, Records: rows})
}

type RolesCmd struct {
	List RolesListCmd `cmd:"" help:"List roles."`
}

type RolesListCmd struct {
	PageFlags `embed:""`
	All       bool   `help:"List all roles without paging."`
	Name      string `help:"Filter by role name."`
	Code      string `help:"Filter by role code."`
}

func (c *RolesListCmd) Run(rt *Runtime) error {
	if _, err := rt.App(); err != nil {
		return err
	}
	if c.All {
		roles, err := service.RoleServiceInstance.All(rt.ctx)
		if err != nil {
			return err
		}
		return rt.Print(roles)
	}
	page, err := service.RoleServiceInstance.List(rt.ctx, &params.RoleSearchParams{
		CommonSearchParams: c.params(),
		Name:               lo.EmptyableToPtr(c.Name),
		Code:               lo.EmptyableToPtr(c.Code),
	})
	if err != nil {
		return err
	}
	return rt.Print(page)
}

type ArticlesCmd struct {
	List ArticlesListCmd `cmd:"" help:"List articles."`
	Top  ArticlesTopCmd  `cmd:"" help:"Pin or unpin an article."`
}

type ArticlesListCmd struct {
	PageFlags `embed:""`
	Title     string `help:"Filter by title."`
	Status    string `help:"Filter by status (DRAFT, PUBLISHED, OFFLINE)."`
	Category  string `help:"Filter by category id."`
	From      string `help:"Published on or after (YYYY-MM-DD)."`
	To        string `help:"Published on or before (YYYY-MM-DD)."`
}

// ArticleRow 文章列表的输出行
type ArticleRow struct {
	ID          int64
	Title       string
	Status      types.ArticleStatus
	AuthorName  string
	PublishTime *string
	IsTop       bool
	IsRecommend bool
	ViewCount   int64
}

func (c *ArticlesListCmd) filter() (*params.ArticleSearchParams, error) {
	status := types.ArticleStatus(c.Status)
	if c.Status != "" && !status.Valid() {
		return nil, errors.Errorf("invalid status %q", c.Status)
	}
	if (c.From == "") != (c.To == "") {
		return nil, errors.New("--from and --to must be given together")
	}
	filter := &params.ArticleSearchParams{
		CommonSearchParams: c.params(),
		Title:              lo.EmptyableToPtr(c.Title),
		CategoryID:         lo.EmptyableToPtr(c.Category),
		Status:             lo.EmptyableToPtr(status),
	}
	if c.From != "" {
		filter.DateRange = []string{c.From, c.To}
	}
	return filter, nil
}

func (c *ArticlesListCmd) Run(rt *Runtime) error {
	filter, err := c.filter()
	if err != nil {
		return err
	}
	if _, err := rt.App(); err != nil {
		return err
	}
	page, err := service.ContentServiceInstance.List(rt.ctx, filter)
	if err != nil {
		return err
	}
	var rows []ArticleRow
	if err := copier.Copy(&rows, &page.Records); err != nil {
		return errors.Wrap(err, "copy article rows")
	}
	return rt.Print(vo.Page[ArticleRow]{Current: page.Current, Size: page.Size, Total: page.Total, Records: rows})
}

type ArticlesTopCmd struct {
	ID  int64 `arg:"" help:"Article id."`
	Off bool  `help:"Unpin instead of pin."`
}

func (c *ArticlesTopCmd) Run(rt *Runtime) error {
	if _, err := rt.App(); err != nil {
		return err
	}
	resp, err := service.ContentServiceInstance.UpdateTop(rt.ctx, c.ID, !c.Off)
	if err != nil {
		return err
	}
	return rt.Print(resp)
}

type TagsCmd struct {
	List TagsListCmd `cmd:"" help:"List tags."`
}

type TagsListCmd struct {
	PageFlags `embed:""`
	Search    string `help:"Keyword search."`
}

func (c *TagsListCmd) Run(rt *Runtime) error {
	if _, err := rt.App(); err != nil {
		return err
	}
	page, err := service.TagServiceInstance.List(rt.ctx, &params.TagSearchParams{
		CommonSearchParams: c.params(),
		Search:             lo.EmptyableToPtr(c.Search),
	})
	if err != nil {
		return err
	}
	return rt.Print(page)
}

type CategoriesCmd struct {
	Tree CategoriesTreeCmd `cmd:"" help:"Print the category tree."`
}

type CategoriesTreeCmd struct{}

func (c *CategoriesTreeCmd) Run(rt *Runtime) error {
	if _, err := rt.App(); err != nil {
		return err
	}
	tree, err := service.CategoryServiceInstance.Tree(rt.ctx)
	if err != nil {
		return err
	}
	return rt.Print(tree)
}

type RoutesCmd struct {
	User     RoutesUserCmd     `cmd:"" help:"Routes visible to the current user."`
	Constant RoutesConstantCmd `cmd:"" help:"Routes that need no login."`
}

type RoutesUserCmd struct{}

func (c *RoutesUserCmd) Run(rt *Runtime) error {
	if _, err := rt.App(); err != nil {
		return err
	}
	routes, err := service.RouteServiceInstance.UserRoutes(rt.ctx)
	if err != nil {
		return err
	}
	return rt.Print(routes)
}

type RoutesConstantCmd struct{}

func (c *RoutesConstantCmd) Run(rt *Runtime) error {
	if _, err := rt.App(); err != nil {
		return err
	}
	routes, err := service.RouteServiceInstance.ConstantRoutes(rt.ctx)
	if err != nil {
		return err
	}
	return rt.Print(routes)
}

// OptionsCmd 不访问后端
type OptionsCmd struct{}

func (c *OptionsCmd) Run(rt *Runtime) error {
	return rt.Print(map[string]any{
		"enableStatus":    constants.EnableStatusOptions,
		"userGender":      constants.UserGenderOptions,
		"menuType":        constants.MenuTypeOptions,
		"menuIconType":    constants.MenuIconTypeOptions,
		"articleStatus":   constants.ArticleStatusOptions,
		"articleEditType": constants.ArticleEditTypeOptions,
	})
}
