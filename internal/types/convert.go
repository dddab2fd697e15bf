package types

import (
	"huodong/admin/internal/model"

	"github.com/jinzhu/copier"
)

// ToUserInfo 将用户模型转换为用户信息（含角色）
func ToUserInfo(u *model.User) *UserInfo {
	if u == nil {
		return nil
	}
	info := &UserInfo{}
	copier.Copy(info, u)
	info.Roles = make([]RoleRef, 0, len(u.Roles))
	for _, r := range u.Roles {
		info.Roles = append(info.Roles, RoleRef{ID: r.ID, Name: r.Name, Code: r.Code})
	}
	return info
}

// ToUserInfoList 批量转换用户信息
func ToUserInfoList(users []*model.User) []*UserInfo {
	list := make([]*UserInfo, len(users))
	for i, u := range users {
		list[i] = ToUserInfo(u)
	}
	return list
}

// ToRoleInfo 将角色模型转换为角色信息
func ToRoleInfo(r *model.Role) *RoleInfo {
	if r == nil {
		return nil
	}
	info := &RoleInfo{}
	copier.Copy(info, r)
	return info
}

// ToRoleInfoList 批量转换角色信息
func ToRoleInfoList(roles []*model.Role) []*RoleInfo {
	list := make([]*RoleInfo, len(roles))
	for i, r := range roles {
		list[i] = ToRoleInfo(r)
	}
	return list
}

// ToDeptInfo 将部门模型转换为部门信息
func ToDeptInfo(d *model.Dept) *DeptInfo {
	if d == nil {
		return nil
	}
	info := &DeptInfo{}
	copier.Copy(info, d)
	return info
}

// BuildDeptTree 构建部门树
func BuildDeptTree(depts []*model.Dept, parentID uint) []DeptTreeInfo {
	var tree []DeptTreeInfo
	for _, dept := range depts {
		if dept.ParentID == parentID {
			node := DeptTreeInfo{DeptInfo: *ToDeptInfo(dept)}
			if children := BuildDeptTree(depts, dept.ID); len(children) > 0 {
				node.Children = children
			}
			tree = append(tree, node)
		}
	}
	return tree
}

// ToResourceInfo 将资源模型转换为资源信息
func ToResourceInfo(r *model.Resource) *ResourceInfo {
	if r == nil {
		return nil
	}
	info := &ResourceInfo{}
	copier.Copy(info, r)
	return info
}

// BuildResourceTree 构建资源树
func BuildResourceTree(resources []*model.Resource, parentID uint) []ResourceTreeInfo {
	var tree []ResourceTreeInfo
	for _, resource := range resources {
		if resource.ParentID == parentID {
			node := ResourceTreeInfo{ResourceInfo: *ToResourceInfo(resource)}
			if children := BuildResourceTree(resources, resource.ID); len(children) > 0 {
				node.Children = children
			}
			tree = append(tree, node)
		}
	}
	return tree
}

// ToActivityInfo 将活动模型转换为活动信息，报名数由调用方补充
func ToActivityInfo(a *model.Activity) *ActivityInfo {
	if a == nil {
		return nil
	}
	info := &ActivityInfo{}
	copier.Copy(info, a)
	return info
}

// ToActivityInfoList 批量转换活动信息
func ToActivityInfoList(activities []*model.Activity) []*ActivityInfo {
	list := make([]*ActivityInfo, len(activities))
	for i, a := range activities {
		list[i] = ToActivityInfo(a)
	}
	return list
}

// ToRegistrationInfo 将报名模型转换为报名信息，活动标题由调用方补充
func ToRegistrationInfo(r *model.Registration) *RegistrationInfo {
	if r == nil {
		return nil
	}
	info := &RegistrationInfo{}
	copier.Copy(info, r)
	return info
}

// ToRegistrationInfoList 批量转换报名信息
func ToRegistrationInfoList(regs []*model.Registration) []*RegistrationInfo {
	list := make([]*RegistrationInfo, len(regs))
	for i, r := range regs {
		list[i] = ToRegistrationInfo(r)
	}
	return list
}
