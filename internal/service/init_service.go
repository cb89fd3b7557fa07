package service

import "github.com/ayxworxfr/go_admin_client/internal/api/request"

// Service 实例变量
var (
	AuthServiceInstance     *AuthService
	UserServiceInstance     *UserService
	RoleServiceInstance     *RoleService
	MenuServiceInstance     *MenuService
	RouteServiceInstance    *RouteService
	ContentServiceInstance  *ContentService
	CategoryServiceInstance *CategoryService
	TagServiceInstance      *TagService
)

// 传输层就绪后调用 Init 函数
func Init(r request.Requester) error {
	AuthServiceInstance = NewAuthService(r)
	UserServiceInstance = NewUserService(r)
	RoleServiceInstance = NewRoleService(r)
	MenuServiceInstance = NewMenuService(r)
	RouteServiceInstance = NewRouteService(r)
	ContentServiceInstance = NewContentService(r)
	CategoryServiceInstance = NewCategoryService(r)
	TagServiceInstance = NewTagService(r)

	return nil
}
