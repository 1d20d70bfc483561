// Package docs POI Catalog Service API.
//
// Каталог точек интереса (POI): CRUD, постраничный листинг, поиск по
// подстроке и тегам, bulk import с поэлементным отчётом, файловая пакетная
// загрузка и метаданные медиа-вложений.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
//	Security:
//	- bearer_token:
//
//	SecurityDefinitions:
//	bearer_token:
//	     type: apiKey
//	     name: Authorization
//	     in: header
//
// swagger:meta
package docs
